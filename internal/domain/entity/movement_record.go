package entity

import (
	"github.com/shopspring/decimal"

	"github.com/rmendes/labstock/internal/domain"
)

// MovementRecord registro replayado do ledger de movimentações. O ID é
// determinístico e salgado pelo índice posicional da linha no dump, para que
// tuplas idênticas não colidam.
type MovementRecord struct {
	ID             string              `json:"id"`
	ItemID         string              `json:"itemId"`
	BatchID        string              `json:"batchId"`
	Date           string              `json:"date"` // ISO, comparável lexicograficamente
	Type           domain.MovementType `json:"type"`
	ProductName    string              `json:"productName"`
	SAPCode        string              `json:"sapCode"`
	Lot            string              `json:"lot"`
	Quantity       decimal.Decimal     `json:"quantity"`
	Unit           string              `json:"unit"`
	LocationName   string              `json:"location_warehouse"`
	Supplier       string              `json:"supplier"`
	Observation    string              `json:"observation"`
	ToLocationID   string              `json:"toLocationId,omitempty"`   // preenchido em ENTRADA
	FromLocationID string              `json:"fromLocationId,omitempty"` // preenchido em SAIDA
}
