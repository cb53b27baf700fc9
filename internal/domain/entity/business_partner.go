package entity

import "time"

// Tipos de parceiro de negócio.
const PartnerTypeSupplier = "SUPPLIER"

// BusinessPartner parceiro de negócio (fornecedor/fabricante) deduplicado
// pelo nome normalizado.
type BusinessPartner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
