package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmendes/labstock/internal/domain/identity"
)

func TestItemIDDeterministico(t *testing.T) {
	a := identity.ItemID("204813", "ÁCIDO CLORÍDRICO", "13564")
	b := identity.ItemID("204813", "ÁCIDO CLORÍDRICO", "13564")
	assert.Equal(t, a, b, "mesma chave natural deve produzir o mesmo id")
	assert.Equal(t, "204813-13564", a)
}

func TestItemIDSemSAP(t *testing.T) {
	// "S/ SAP" limpa para o sentinela SSAP e cai no hash do nome
	id := identity.ItemID("S/ SAP", "ACETONA P.A.", "L-9")
	assert.Contains(t, id, "NOSAP-")
	assert.Contains(t, id, "-L9")

	// nomes diferentes, ids diferentes
	other := identity.ItemID("S/ SAP", "ETANOL", "L-9")
	assert.NotEqual(t, id, other)
}

func TestItemIDLoteVazio(t *testing.T) {
	assert.Equal(t, "204813-GEN", identity.ItemID("204813", "X", ""))
}

func TestItemIDSemSAPESemNome(t *testing.T) {
	id := identity.ItemID("", "", "L1")
	assert.Contains(t, id, "UNK-")
	// determinístico mesmo no último fallback
	assert.Equal(t, id, identity.ItemID("", "", "L1"))
}

func TestItemIDSentinelaLegacy(t *testing.T) {
	// LEGACY é sentinela: fantasmas de lotes legados distintos recebem ids
	// distintos, derivados do nome sintetizado
	a := identity.ItemID("LEGACY", "Item Legado 77", "GEN")
	b := identity.ItemID("LEGACY", "Item Legado 78", "GEN")
	assert.NotEqual(t, a, b)
}

func TestPrefixos(t *testing.T) {
	assert.Equal(t, "BAT-204813-13564", identity.BatchID("204813-13564"))
	assert.Contains(t, identity.CatalogID("204813", "X"), "CAT-204813-GEN")
	assert.Contains(t, identity.PartnerID("Genérico"), "PRT-")
	assert.Contains(t, identity.LocationID("Geral"), "LOC-")
	assert.Contains(t, identity.BalanceID("BAT-1", "LOC-1"), "BAL-")
}

func TestPartnerIDNormaliza(t *testing.T) {
	assert.Equal(t, identity.PartnerID("GENÉRICO"), identity.PartnerID("generico"))
}

func TestHistoryIDSalgadoPorIndice(t *testing.T) {
	a := identity.HistoryID("I1", "2023-01-10", "ENTRADA", "100", 0)
	b := identity.HistoryID("I1", "2023-01-10", "ENTRADA", "100", 1)
	assert.NotEqual(t, a, b, "tuplas idênticas em posições diferentes não podem colidir")
}
