package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de item no snapshot plano.
const (
	ItemStatusAtivo    = "Ativo"
	ItemStatusObsoleto = "Obsoleto"
)

// Categoria reservada para itens fantasma recuperados do histórico.
const CategoryArquivoMorto = "Arquivo Morto"

// ItemLocation localização física de um item (armazém > armário > prateleira).
type ItemLocation struct {
	Warehouse string `json:"warehouse"`
	Cabinet   string `json:"cabinet"`
	Shelf     string `json:"shelf"`
	Position  string `json:"position"`
}

// FlatInventoryItem snapshot plano de um lote reconciliado: uma linha por
// id determinístico dentro de uma chamada do pipeline. A Quantity começa em
// zero e é acumulada pelo replay das movimentações.
type FlatInventoryItem struct {
	ID            string          `json:"id"`
	SAPCode       string          `json:"sapCode"`
	Name          string          `json:"name"`
	LotNumber     string          `json:"lotNumber"`
	BaseUnit      string          `json:"baseUnit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Category      string          `json:"category"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	Supplier      string          `json:"supplier"`
	ExpiryDate    string          `json:"expiryDate"`    // ISO (AAAA-MM-DD) ou vazio
	DateAcquired  string          `json:"dateAcquired"`  // primeira ENTRADA conhecida
	LastUpdated   time.Time       `json:"lastUpdated"`
	ItemStatus    string          `json:"itemStatus"`
	Type          string          `json:"type"`
	MaterialGroup string          `json:"materialGroup"`
	IsControlled  bool            `json:"isControlled"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Currency      string          `json:"currency"`
	Location      ItemLocation    `json:"location"`
	LocationID    string          `json:"locationId"`
	Risks         RiskFlags       `json:"risks"`
	IsGhost       bool            `json:"isGhost,omitempty"`
	BatchID       string          `json:"batchId"`
	CatalogID     string          `json:"catalogId"`
}
