// Package identity deriva identificadores determinísticos a partir das
// chaves naturais do inventário. Reimportar o mesmo dado lógico produz sempre
// os mesmos ids, o que torna a migração idempotente (upsert por id no destino).
package identity

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/rmendes/labstock/pkg/strutil"
)

// Códigos que aparecem no campo SAP dos dumps mas não identificam produto
// (placeholders de "sem SAP" e o código reservado para itens fantasma).
var sapSentinels = map[string]bool{
	"NSAP":   true,
	"SSAP":   true, // forma limpa de "S/ SAP"
	"NA":     true,
	"0":      true,
	"LEGACY": true,
}

// Hash FNV-1a de 32 bits em hexadecimal maiúsculo. Curto o suficiente para
// compor ids legíveis e estável entre execuções.
func Hash(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return strings.ToUpper(fmt.Sprintf("%x", h.Sum32()))
}

// ItemID deriva o id de um item de inventário a partir de SAP + nome + lote.
// Com SAP utilizável o id é legível ({SAP}-{LOTE}); sem SAP cai no hash do
// nome normalizado; sem nome, no hash do lote. Nunca usa relógio nem
// aleatoriedade: o id é função pura da chave natural.
func ItemID(sap, name, lot string) string {
	cSap := strutil.Clean(sap)
	cLot := strutil.Clean(lot)
	if cLot == "" {
		cLot = "GEN"
	}

	if len(cSap) > 2 && !sapSentinels[cSap] {
		return cSap + "-" + cLot
	}

	if cName := strutil.Clean(name); cName != "" {
		return "NOSAP-" + Hash(cName) + "-" + cLot
	}

	return "UNK-" + Hash(cLot)
}

// CatalogID id da definição de catálogo (independente de lote).
func CatalogID(sap, name string) string {
	return "CAT-" + ItemID(sap, name, "")
}

// BatchID id do lote físico associado a um item plano.
func BatchID(itemID string) string {
	return "BAT-" + itemID
}

// PartnerID id de parceiro derivado do nome normalizado do fornecedor.
func PartnerID(supplierName string) string {
	return "PRT-" + Hash(strutil.Normalize(supplierName))
}

// LocationID id de local derivado do caminho físico normalizado.
func LocationID(path string) string {
	return "LOC-" + Hash(strutil.Normalize(path))
}

// BalanceID id de saldo: um lote tem no máximo um saldo por local.
func BalanceID(batchID, locationID string) string {
	return "BAL-" + Hash(batchID+locationID)
}

// HistoryID id de registro de movimentação, salgado pelo índice posicional
// da linha para que tuplas repetidas no dump não colidam.
func HistoryID(itemID, date, movType, qty string, idx int) string {
	return "HIST-" + Hash(fmt.Sprintf("%s-%s-%s-%s-%d", itemID, date, movType, qty, idx))
}
