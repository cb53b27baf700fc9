// Package reconcile implementa o pipeline de reconciliação de dados legados:
// junta as três tabelas fracamente ligadas do LIMS (produtos, lotes,
// movimentações), sintetiza identificadores determinísticos e replaya o
// ledger de movimentações para reconstruir os saldos ponto-a-ponto.
package reconcile

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmendes/labstock/internal/application/dto"
	"github.com/rmendes/labstock/internal/domain"
	"github.com/rmendes/labstock/internal/domain/entity"
	"github.com/rmendes/labstock/internal/domain/identity"
	"github.com/rmendes/labstock/internal/legacy/rows"
	"github.com/rmendes/labstock/pkg/logger"
	"github.com/rmendes/labstock/pkg/strutil"
)

// Defaults aplicados quando o dump não traz a informação.
const (
	defaultCategory  = "Geral"
	defaultWarehouse = "Geral"
	ghostWarehouse   = "Arquivo"
	ghostSupplier    = "Legado"
	defaultCurrency  = "BRL"
	defaultType      = "ROH"
)

// Engine motor de reconciliação. Cada chamada aloca seus próprios mapas:
// chamadas concorrentes com entradas independentes são totalmente reentrantes.
type Engine struct {
	log *logger.Logger
	now func() time.Time
}

// NewEngine constrói o motor. log nil vira um logger nop.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{log: log, now: time.Now}
}

// WithClock substitui o relógio usado para timestamps default (testes e
// reexecuções reprodutíveis).
func (e *Engine) WithClock(now func() time.Time) *Engine {
	if now != nil {
		e.now = now
	}
	return e
}

// PrepareRawData processa um dump legado (SQL ou objetos) no formato interno,
// em três passadas: produtos -> índice por SAP; lotes -> itens planos com
// saldo zero; movimentações -> replay de saldo com síntese de fantasmas.
// Linha malformada é descartada, nunca erro: a reconciliação é best-effort
// por contrato.
func (e *Engine) PrepareRawData(ctx context.Context, dump dto.RawDump) *dto.PreparedData {
	nowT := e.now()
	nowISO := nowT.UTC().Format(time.RFC3339)

	// 1. PRODUTOS: índice por código SAP, última ocorrência vence.
	prodMap := make(map[string]rows.ProductRow)
	droppedProducts := 0
	for _, r := range dump.Produtos {
		p, ok := rows.NormalizeProduct(r)
		if !ok {
			droppedProducts++
			continue
		}
		if p.SAPCode != "" {
			prodMap[p.SAPCode] = p
		}
	}

	// 2. LOTES: gera os itens planos base. A primeira ocorrência de um id
	// determinístico vence (protege contra linhas duplicadas no dump).
	var ordered []*entity.FlatInventoryItem
	itemsByID := make(map[string]*entity.FlatInventoryItem)
	legacyToItem := make(map[string]string) // id de lote legado -> id determinístico
	droppedLots := 0

	for _, r := range dump.Lotes {
		lot, ok := rows.NormalizeLot(r)
		if !ok {
			droppedLots++
			continue
		}

		// Join fraco com produtos via SAP; ausência vira placeholder.
		rawName := "Produto " + lot.SAPCode
		unit := "UN"
		if p, found := prodMap[lot.SAPCode]; found {
			rawName = p.Name
			unit = p.Unit
		}
		name := strutil.SanitizeProductName(rawName)

		sap := lot.SAPCode
		if sap == "" {
			sap = "S/ SAP"
		}
		lotNum := lot.LotCode
		if lotNum == "" {
			lotNum = "GEN"
		}
		manufacturer := lot.Manufacturer
		if manufacturer == "" {
			manufacturer = "Desconhecido"
		}

		id := identity.ItemID(sap, name, lotNum)

		// Traduz o id legado mesmo quando o item é duplicado: movimentações
		// que referenciam qualquer um dos lotes duplicados caem no mesmo item.
		legacyToItem[lot.LegacyLotID] = id

		if _, dup := itemsByID[id]; dup {
			continue
		}

		item := &entity.FlatInventoryItem{
			ID:            id,
			SAPCode:       sap,
			Name:          name,
			LotNumber:     lotNum,
			BaseUnit:      unit,
			Quantity:      decimal.Zero, // calculado pelo replay
			Category:      defaultCategory,
			MinStockLevel: decimal.NewFromInt(10),
			Supplier:      strutil.SanitizeProductName(manufacturer),
			ExpiryDate:    lot.ExpiryDate,
			DateAcquired:  nowISO,
			LastUpdated:   nowT,
			ItemStatus:    entity.ItemStatusAtivo,
			Type:          defaultType,
			MaterialGroup: defaultCategory,
			UnitCost:      decimal.Zero,
			Currency:      defaultCurrency,
			Location:      entity.ItemLocation{Warehouse: defaultWarehouse},
			LocationID:    identity.LocationID(defaultWarehouse),
			BatchID:       identity.BatchID(id),
			CatalogID:     identity.CatalogID(sap, name),
		}
		ordered = append(ordered, item)
		itemsByID[id] = item
	}

	// 3. MOVIMENTAÇÕES: replay do ledger sobre os itens, com síntese de
	// fantasmas para movimentações órfãs.
	var ghosts []*entity.FlatInventoryItem
	history := make([]entity.MovementRecord, 0, len(dump.Movimentacoes))
	droppedMovements := 0

	for idx, r := range dump.Movimentacoes {
		m, ok := rows.NormalizeMovement(r)
		if !ok {
			droppedMovements++
			continue
		}

		var item *entity.FlatInventoryItem
		if targetID, found := legacyToItem[m.LegacyLotID]; found {
			item = itemsByID[targetID]
		}

		// Fallback: item fantasma (a movimentação existe, o cadastro não).
		// Sintetizado exatamente uma vez por id legado e registrado nos dois
		// mapas, para que as próximas linhas reutilizem o mesmo fantasma.
		if item == nil {
			item = e.ghostFor(m, nowT, nowISO, itemsByID, legacyToItem, &ghosts)
		}

		movType := domain.ClassifyMovementType(m.TypeText)
		qty := m.Quantity

		switch movType {
		case domain.MovementEntrada:
			item.Quantity = item.Quantity.Add(qty)
			// Primeira entrada conhecida define a data de aquisição
			// (datas ISO de largura fixa comparam lexicograficamente).
			if m.Date != "" && (item.DateAcquired == "" || m.Date < item.DateAcquired) {
				item.DateAcquired = m.Date
			}
		case domain.MovementSaida:
			item.Quantity = item.Quantity.Sub(qty)
		case domain.MovementAjuste:
			// Apenas registrado no ledger: ajustes representam correções já
			// aplicadas na origem e não alteram o saldo calculado.
		}

		date := m.Date
		if date == "" {
			date = nowISO
		}
		locRef := item.Location.Warehouse
		if locRef == "" {
			locRef = defaultWarehouse
		}
		observation := "Importado do LIMS"
		if item.IsGhost {
			observation = "Recuperado do histórico"
		}

		rec := entity.MovementRecord{
			ID:           identity.HistoryID(item.ID, m.Date, string(movType), qty.String(), idx),
			ItemID:       item.ID,
			BatchID:      item.BatchID,
			Date:         date,
			Type:         movType,
			ProductName:  item.Name,
			SAPCode:      item.SAPCode,
			Lot:          item.LotNumber,
			Quantity:     qty,
			Unit:         item.BaseUnit,
			LocationName: locRef,
			Supplier:     item.Supplier,
			Observation:  observation,
		}
		switch movType {
		case domain.MovementEntrada:
			rec.ToLocationID = identity.LocationID(locRef)
		case domain.MovementSaida:
			rec.FromLocationID = identity.LocationID(locRef)
		}
		history = append(history, rec)
	}

	// Itens normais seguidos dos fantasmas; saldo arredondado em 3 casas e
	// nunca negativo (retirada além do saldo é silenciosamente zerada).
	final := make([]entity.FlatInventoryItem, 0, len(ordered)+len(ghosts))
	for _, it := range append(ordered, ghosts...) {
		q := it.Quantity.Round(3)
		if q.IsNegative() {
			q = decimal.Zero
		}
		it.Quantity = q
		final = append(final, *it)
	}

	e.log.Info().
		Int("produtos", len(prodMap)).
		Int("itens", len(ordered)).
		Int("fantasmas", len(ghosts)).
		Int("movimentacoes", len(history)).
		Int("descartadas", droppedProducts+droppedLots+droppedMovements).
		Msg("reconciliação concluída")

	return &dto.PreparedData{Items: final, History: history}
}

// ghostFor materializa (ou reutiliza) o item fantasma de uma movimentação
// órfã e o registra nos mapas de tradução.
func (e *Engine) ghostFor(
	m rows.MovementRow,
	nowT time.Time,
	nowISO string,
	itemsByID map[string]*entity.FlatInventoryItem,
	legacyToItem map[string]string,
	ghosts *[]*entity.FlatInventoryItem,
) *entity.FlatInventoryItem {
	ghostName := "Item Legado " + m.LegacyLotID
	ghostID := identity.ItemID("LEGACY", ghostName, "GEN")

	if g, ok := itemsByID[ghostID]; ok {
		legacyToItem[m.LegacyLotID] = ghostID
		return g
	}

	dateAcquired := m.Date
	if dateAcquired == "" {
		dateAcquired = nowISO
	}

	g := &entity.FlatInventoryItem{
		ID:            ghostID,
		SAPCode:       "LEGACY",
		Name:          ghostName,
		LotNumber:     "GEN",
		BaseUnit:      "UN",
		Quantity:      decimal.Zero,
		Category:      entity.CategoryArquivoMorto,
		MinStockLevel: decimal.Zero,
		Supplier:      ghostSupplier,
		DateAcquired:  dateAcquired,
		LastUpdated:   nowT,
		ItemStatus:    entity.ItemStatusObsoleto,
		Type:          defaultType,
		MaterialGroup: "Legacy",
		UnitCost:      decimal.Zero,
		Currency:      defaultCurrency,
		Location:      entity.ItemLocation{Warehouse: ghostWarehouse},
		LocationID:    identity.LocationID(ghostWarehouse),
		IsGhost:       true,
		BatchID:       identity.BatchID(ghostID),
		CatalogID:     identity.CatalogID("LEGACY", ghostName),
	}

	*ghosts = append(*ghosts, g)
	itemsByID[ghostID] = g
	legacyToItem[m.LegacyLotID] = ghostID

	e.log.Debug().Str("id_lote_legado", m.LegacyLotID).Str("ghost_id", ghostID).
		Msg("item fantasma sintetizado para movimentação órfã")

	return g
}
