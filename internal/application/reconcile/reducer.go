package reconcile

import (
	"strings"

	"github.com/rmendes/labstock/internal/application/dto"
	"github.com/rmendes/labstock/internal/domain/entity"
	"github.com/rmendes/labstock/internal/domain/identity"
)

// DeriveNormalizedData reduz uma lista plana de itens nas cinco coleções
// relacionais deduplicadas por id determinístico. Catálogo, parceiros,
// locais e lotes: primeira ocorrência vence. Saldos: última ocorrência vence
// (um lote tem no máximo um saldo por local; itens duplicados apontando para
// o mesmo par lote+local sobrescrevem em vez de duplicar o id).
func (e *Engine) DeriveNormalizedData(items []entity.FlatInventoryItem) *dto.NormalizedData {
	nowT := e.now()

	catalogIdx := make(map[string]int)
	partnerIdx := make(map[string]int)
	locationIdx := make(map[string]int)
	batchIdx := make(map[string]int)
	balanceIdx := make(map[string]int)

	out := &dto.NormalizedData{
		Catalog:   []entity.CatalogProduct{},
		Partners:  []entity.BusinessPartner{},
		Locations: []entity.StorageLocation{},
		Batches:   []entity.InventoryBatch{},
		Balances:  []entity.StockBalance{},
	}

	for _, item := range items {
		// 1. CATÁLOGO (definição do produto, independente de lote)
		catalogID := item.CatalogID
		if catalogID == "" {
			catalogID = identity.CatalogID(item.SAPCode, item.Name)
		}
		if _, seen := catalogIdx[catalogID]; !seen {
			catalogIdx[catalogID] = len(out.Catalog)
			out.Catalog = append(out.Catalog, entity.CatalogProduct{
				ID:            catalogID,
				SAPCode:       item.SAPCode,
				Name:          item.Name,
				Risks:         item.Risks,
				CategoryID:    item.Category,
				BaseUnit:      item.BaseUnit,
				IsControlled:  item.IsControlled,
				MinStockLevel: item.MinStockLevel,
				IsActive:      true,
				CreatedAt:     nowT,
				UpdatedAt:     nowT,
			})
		}

		// 2. PARCEIRO (fornecedor), deduplicado pelo nome normalizado
		supplierName := strings.TrimSpace(item.Supplier)
		if supplierName == "" {
			supplierName = "Genérico"
		}
		partnerID := identity.PartnerID(supplierName)
		if _, seen := partnerIdx[partnerID]; !seen {
			partnerIdx[partnerID] = len(out.Partners)
			out.Partners = append(out.Partners, entity.BusinessPartner{
				ID:        partnerID,
				Name:      supplierName,
				Type:      entity.PartnerTypeSupplier,
				Active:    true,
				CreatedAt: nowT,
			})
		}

		// 3. LOCAL físico (armazém > armário > prateleira)
		warehouse := item.Location.Warehouse
		if warehouse == "" {
			warehouse = "Geral"
		}
		pathString := strings.TrimSpace(strings.Join([]string{
			warehouse, item.Location.Cabinet, item.Location.Shelf,
		}, " "))
		locationID := identity.LocationID(pathString)
		if _, seen := locationIdx[locationID]; !seen {
			locType := entity.LocationTypeWarehouse
			if item.Location.Cabinet != "" {
				locType = entity.LocationTypeCabinet
			}
			locationIdx[locationID] = len(out.Locations)
			out.Locations = append(out.Locations, entity.StorageLocation{
				ID:         locationID,
				Name:       warehouse,
				Type:       locType,
				PathString: pathString,
				CreatedAt:  nowT,
			})
		}

		// 4. LOTE físico
		batchID := item.BatchID
		if batchID == "" {
			batchID = identity.BatchID(item.ID)
		}
		if _, seen := batchIdx[batchID]; !seen {
			status := entity.BatchStatusBlocked
			if item.ItemStatus == entity.ItemStatusAtivo {
				status = entity.BatchStatusActive
			}
			batchIdx[batchID] = len(out.Batches)
			out.Batches = append(out.Batches, entity.InventoryBatch{
				ID:         batchID,
				CatalogID:  catalogID,
				PartnerID:  partnerID,
				LotNumber:  item.LotNumber,
				UnitCost:   item.UnitCost,
				ExpiryDate: item.ExpiryDate,
				Status:     status,
				CreatedAt:  nowT,
				UpdatedAt:  nowT,
			})
		}

		// 5. SALDO no local: id determinístico por par lote+local; a última
		// ocorrência sobrescreve a anterior em vez de duplicar o id.
		balanceID := identity.BalanceID(batchID, locationID)
		balance := entity.StockBalance{
			ID:             balanceID,
			BatchID:        batchID,
			LocationID:     locationID,
			Quantity:       item.Quantity,
			LastMovementAt: item.LastUpdated,
			CreatedAt:      nowT,
		}
		if pos, seen := balanceIdx[balanceID]; seen {
			out.Balances[pos] = balance
		} else {
			balanceIdx[balanceID] = len(out.Balances)
			out.Balances = append(out.Balances, balance)
		}
	}

	return out
}
