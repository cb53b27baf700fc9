package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct definição de produto no catálogo normalizado (uma entrada
// por SAP + nome, independente de lote).
type CatalogProduct struct {
	ID               string          `json:"id"`
	SAPCode          string          `json:"sapCode"`
	Name             string          `json:"name"`
	CASNumber        string          `json:"casNumber,omitempty"`
	MolecularFormula string          `json:"molecularFormula,omitempty"`
	MolecularWeight  string          `json:"molecularWeight,omitempty"`
	Risks            RiskFlags       `json:"risks"`
	CategoryID       string          `json:"categoryId"`
	BaseUnit         string          `json:"baseUnit"`
	IsControlled     bool            `json:"isControlled"`
	MinStockLevel    decimal.Decimal `json:"minStockLevel"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
