package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um lote físico.
const (
	BatchStatusActive  = "ACTIVE"
	BatchStatusBlocked = "BLOCKED"
)

// InventoryBatch lote físico de um produto do catálogo, fornecido por um
// parceiro.
type InventoryBatch struct {
	ID         string          `json:"id"`
	CatalogID  string          `json:"catalogId"`
	PartnerID  string          `json:"partnerId"`
	LotNumber  string          `json:"lotNumber"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	ExpiryDate string          `json:"expiryDate,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
