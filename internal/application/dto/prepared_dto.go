package dto

import "github.com/rmendes/labstock/internal/domain/entity"

// PreparedData resultado da reconciliação: snapshot plano (itens reais +
// fantasmas) e o ledger de movimentações replayado.
type PreparedData struct {
	Items   []entity.FlatInventoryItem `json:"items"`
	History []entity.MovementRecord    `json:"history"`
}

// NormalizedData as cinco coleções relacionais deduplicadas, prontas para
// upsert por id no repositório de destino.
type NormalizedData struct {
	Catalog   []entity.CatalogProduct  `json:"catalog"`
	Partners  []entity.BusinessPartner `json:"partners"`
	Locations []entity.StorageLocation `json:"locations"`
	Batches   []entity.InventoryBatch  `json:"batches"`
	Balances  []entity.StockBalance    `json:"balances"`
}
