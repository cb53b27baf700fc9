package reconcile

import (
	"context"

	"github.com/rmendes/labstock/internal/application/dto"
	"github.com/rmendes/labstock/internal/legacy/rows"
)

// PrepareRelationalData processa o DTO relacional (formato de backup JSON)
// remodelando productBatches/movementHistory para a forma de dump cru e
// delegando integralmente a PrepareRawData. Adaptador puro, sem lógica
// própria de negócio.
func (e *Engine) PrepareRelationalData(ctx context.Context, full dto.FullRelationalDump) *dto.PreparedData {
	raw := dto.RawDump{}

	if rel := full.RelationalData; rel != nil {
		for _, b := range rel.ProductBatches {
			raw.Produtos = append(raw.Produtos, rows.FromObject(rows.ProductObject{
				Cdsap:       rows.Flex(b.SAPCode),
				NomeProduto: rows.Flex(b.ProductName),
				Unidade:     rows.Flex(b.UnitOfMeasure),
			}))
			raw.Lotes = append(raw.Lotes, rows.FromObject(rows.LotObject{
				IDLote:     rows.Flex(b.ID),
				Cdsap:      rows.Flex(b.SAPCode),
				Lote:       rows.Flex(b.Batch),
				Fabricante: rows.Flex(b.Manufacturer),
				Validade:   rows.Flex(b.ExpirationDate),
			}))
		}
		for _, m := range rel.MovementHistory {
			raw.Movimentacoes = append(raw.Movimentacoes, rows.FromObject(rows.MovementObject{
				IDLote:     rows.Flex(m.ProductBatchID),
				TipoMov:    rows.Flex(m.MovementType),
				DataMov:    rows.Flex(m.MovementDate),
				Quantidade: rows.Flex(m.Quantity.String()),
			}))
		}
	}

	return e.PrepareRawData(ctx, raw)
}
