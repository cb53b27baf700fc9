package rows_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmendes/labstock/internal/legacy/rows"
)

func TestRawRowUnmarshalStringOuObjeto(t *testing.T) {
	var parsed []rows.RawRow
	payload := `["INSERT INTO p VALUES ('204813', 'ACIDO', 'ML');", {"cdsap": "204813"}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &parsed))
	require.Len(t, parsed, 2)

	assert.NotEmpty(t, parsed[0].Text)
	assert.Nil(t, parsed[0].Obj)
	assert.Empty(t, parsed[1].Text)
	assert.NotNil(t, parsed[1].Obj)
}

func TestNormalizeProductDeSQL(t *testing.T) {
	r := rows.FromText("INSERT INTO produtos VALUES ('204813', 'ACIDO CLORIDRICO', 'ML');")
	p, ok := rows.NormalizeProduct(r)
	require.True(t, ok)
	assert.Equal(t, "204813", p.SAPCode)
	assert.Equal(t, "ACIDO CLORIDRICO", p.Name)
	assert.Equal(t, "ML", p.Unit)
}

func TestNormalizeProductDeObjeto(t *testing.T) {
	// cdsap numérico no JSON também é aceito
	var r rows.RawRow
	require.NoError(t, json.Unmarshal([]byte(`{"cdsap": 204813, "nome_produto": "ACIDO", "unidade": "ML"}`), &r))
	p, ok := rows.NormalizeProduct(r)
	require.True(t, ok)
	assert.Equal(t, "204813", p.SAPCode)
}

func TestNormalizeProductMalformado(t *testing.T) {
	_, ok := rows.NormalizeProduct(rows.FromText("DELETE FROM produtos"))
	assert.False(t, ok, "linha sem VALUES deve ser descartada")

	_, ok = rows.NormalizeProduct(rows.FromText("INSERT INTO p VALUES ('so-um-campo');"))
	assert.False(t, ok, "aridade insuficiente deve ser descartada")

	_, ok = rows.NormalizeProduct(rows.RawRow{})
	assert.False(t, ok)
}

func TestNormalizeLotDeSQL(t *testing.T) {
	r := rows.FromText("INSERT INTO lotes VALUES ('L1', '204813', '13564', 'GENERICO', NULL);")
	l, ok := rows.NormalizeLot(r)
	require.True(t, ok)
	assert.Equal(t, "L1", l.LegacyLotID)
	assert.Equal(t, "204813", l.SAPCode)
	assert.Equal(t, "13564", l.LotCode)
	assert.Equal(t, "GENERICO", l.Manufacturer)
	assert.Empty(t, l.ExpiryDate, "validade NULL vira vazio")
}

func TestNormalizeLotDeObjetoComValidadeNula(t *testing.T) {
	var r rows.RawRow
	require.NoError(t, json.Unmarshal([]byte(`{"id_lote": "L1", "cdsap": "204813", "lote": "13564", "fabricante": "GENERICO", "validade": null}`), &r))
	l, ok := rows.NormalizeLot(r)
	require.True(t, ok)
	assert.Empty(t, l.ExpiryDate)
}

func TestNormalizeMovementAridade4(t *testing.T) {
	r := rows.FromText("INSERT INTO mov VALUES ('L1', 'ENTRADA', '2023-01-10', 100);")
	m, ok := rows.NormalizeMovement(r)
	require.True(t, ok)
	assert.Empty(t, m.LegacyMovementID)
	assert.Equal(t, "L1", m.LegacyLotID)
	assert.Equal(t, "ENTRADA", m.TypeText)
	assert.Equal(t, "2023-01-10", m.Date)
	assert.True(t, m.Quantity.Equal(decimal.NewFromInt(100)))
}

func TestNormalizeMovementAridade5(t *testing.T) {
	r := rows.FromText("INSERT INTO mov VALUES ('M9', 'L1', 'SAIDA', '2023-03-10', 5);")
	m, ok := rows.NormalizeMovement(r)
	require.True(t, ok)
	assert.Equal(t, "M9", m.LegacyMovementID)
	assert.Equal(t, "L1", m.LegacyLotID)
	assert.Equal(t, "SAIDA", m.TypeText)
}

func TestNormalizeMovementAridadeInvalida(t *testing.T) {
	_, ok := rows.NormalizeMovement(rows.FromText("INSERT INTO mov VALUES ('L1', 'ENTRADA');"))
	assert.False(t, ok)
}

func TestNormalizeMovementQuantidadeNaoNumerica(t *testing.T) {
	var r rows.RawRow
	require.NoError(t, json.Unmarshal([]byte(`{"id_lote": "L1", "tipo_mov": "ENTRADA", "data_mov": "2023-01-10", "quantidade": "abc"}`), &r))
	m, ok := rows.NormalizeMovement(r)
	require.True(t, ok, "a linha entra no ledger mesmo com quantidade ilegível")
	assert.True(t, m.Quantity.IsZero(), "quantidade ilegível vira zero")
}

func TestFromObjectRoundTrip(t *testing.T) {
	r := rows.FromObject(rows.MovementObject{
		IDLote:  "L1",
		TipoMov: "ENTRADA",
		DataMov: "2023-01-10",
	})
	m, ok := rows.NormalizeMovement(r)
	require.True(t, ok)
	assert.Equal(t, "L1", m.LegacyLotID)
	assert.True(t, m.Quantity.IsZero())
}
