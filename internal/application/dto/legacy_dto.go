package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rmendes/labstock/internal/legacy/rows"
)

// RawDump dump legado do LIMS: três coleções de linhas polimórficas
// (fragmento SQL INSERT ou objeto JSON por linha).
type RawDump struct {
	Produtos      []rows.RawRow `json:"produtos"`
	Lotes         []rows.RawRow `json:"lotes"`
	Movimentacoes []rows.RawRow `json:"movimentacoes"`
}

// FullRelationalDump DTO relacional alternativo (formato de backup JSON).
type FullRelationalDump struct {
	RelationalData *RelationalData `json:"relationalData"`
}

// RelationalData coleções do DTO relacional.
type RelationalData struct {
	ProductBatches  []ProductBatchDTO  `json:"productBatches"`
	MovementHistory []MovementEntryDTO `json:"movementHistory"`
}

// ProductBatchDTO lote+produto achatados na forma relacional.
type ProductBatchDTO struct {
	ID             string `json:"id"`
	SAPCode        string `json:"sapCode"`
	ProductName    string `json:"productName"`
	UnitOfMeasure  string `json:"unitOfMeasure"`
	Batch          string `json:"batch"`
	Manufacturer   string `json:"manufacturer"`
	ExpirationDate string `json:"expirationDate"`
}

// MovementEntryDTO movimentação na forma relacional.
type MovementEntryDTO struct {
	ProductBatchID string          `json:"productBatchId"`
	MovementType   string          `json:"movementType"`
	MovementDate   string          `json:"movementDate"`
	Quantity       decimal.Decimal `json:"quantity"`
}
