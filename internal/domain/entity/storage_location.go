package entity

import "time"

// Tipos de local físico.
const (
	LocationTypeWarehouse = "WAREHOUSE"
	LocationTypeCabinet   = "CABINET"
)

// StorageLocation local físico de armazenamento, identificado pelo hash do
// caminho normalizado (armazém + armário + prateleira).
type StorageLocation struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	PathString string    `json:"pathString"`
	CreatedAt  time.Time `json:"createdAt"`
}
