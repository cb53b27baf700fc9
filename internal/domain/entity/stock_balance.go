package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance saldo de um lote em um local. Um lote tem no máximo um saldo
// por local: o ID deriva de batchID + locationID.
type StockBalance struct {
	ID             string          `json:"id"`
	BatchID        string          `json:"batchId"`
	LocationID     string          `json:"locationId"`
	Quantity       decimal.Decimal `json:"quantity"`
	LastMovementAt time.Time       `json:"lastMovementAt"`
	CreatedAt      time.Time       `json:"createdAt"`
}
