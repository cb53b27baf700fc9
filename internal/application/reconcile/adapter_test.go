package reconcile_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmendes/labstock/internal/application/dto"
)

func TestPrepareRelationalDataDelegaAoPipeline(t *testing.T) {
	full := dto.FullRelationalDump{
		RelationalData: &dto.RelationalData{
			ProductBatches: []dto.ProductBatchDTO{{
				ID:            "PB1",
				SAPCode:       "204813",
				ProductName:   "ACIDO CLORIDRICO",
				UnitOfMeasure: "ML",
				Batch:         "13564",
				Manufacturer:  "GENERICO",
			}},
			MovementHistory: []dto.MovementEntryDTO{
				{ProductBatchID: "PB1", MovementType: "ENTRADA", MovementDate: "2023-01-10", Quantity: decimal.NewFromInt(100)},
				{ProductBatchID: "PB1", MovementType: "SAIDA", MovementDate: "2023-03-10", Quantity: decimal.NewFromInt(5)},
			},
		},
	}

	out := newTestEngine().PrepareRelationalData(context.Background(), full)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "204813-13564", out.Items[0].ID)
	assert.Equal(t, "ÁCIDO CLORÍDRICO", out.Items[0].Name)
	assert.True(t, out.Items[0].Quantity.Equal(decimal.NewFromInt(95)))
	assert.Len(t, out.History, 2)
}

// O formato relacional e o formato cru devem convergir para a mesma saída
// quando descrevem os mesmos fatos.
func TestPrepareRelationalDataEquivaleAoCru(t *testing.T) {
	eng := newTestEngine()

	cru := eng.PrepareRawData(context.Background(), scenarioDump(t))

	full := dto.FullRelationalDump{
		RelationalData: &dto.RelationalData{
			ProductBatches: []dto.ProductBatchDTO{{
				ID:            "L1",
				SAPCode:       "204813",
				ProductName:   "ÁCIDO CLORÍDRICO",
				UnitOfMeasure: "ML",
				Batch:         "13564",
				Manufacturer:  "GENERICO",
			}},
			MovementHistory: []dto.MovementEntryDTO{
				{ProductBatchID: "L1", MovementType: "ENTRADA", MovementDate: "2023-01-10", Quantity: decimal.NewFromInt(100)},
				{ProductBatchID: "L1", MovementType: "SAIDA", MovementDate: "2023-03-10", Quantity: decimal.NewFromInt(5)},
			},
		},
	}
	relacional := eng.PrepareRelationalData(context.Background(), full)

	assert.Equal(t, cru, relacional)
}

func TestPrepareRelationalDataNil(t *testing.T) {
	out := newTestEngine().PrepareRelationalData(context.Background(), dto.FullRelationalDump{})
	assert.Empty(t, out.Items)
	assert.Empty(t, out.History)
}
