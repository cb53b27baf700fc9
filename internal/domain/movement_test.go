package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmendes/labstock/internal/domain"
)

func TestClassifyMovementType(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.MovementType
	}{
		{"ENTRADA", domain.MovementEntrada},
		{"Compra NF 1234", domain.MovementEntrada},
		{"recebimento", domain.MovementEntrada},
		{"Devolução", domain.MovementEntrada},
		{"E", domain.MovementEntrada},
		{"SAIDA", domain.MovementSaida},
		{"Saída p/ análise", domain.MovementSaida},
		{"consumo bancada", domain.MovementSaida},
		{"baixa", domain.MovementSaida},
		{"s", domain.MovementSaida},
		{"AJUSTE", domain.MovementAjuste},
		{"correção de saldo", domain.MovementAjuste},
		{"audit", domain.MovementAjuste},
		{"", domain.MovementAjuste},
		{"???", domain.MovementAjuste},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.ClassifyMovementType(tc.raw), "texto %q", tc.raw)
	}
}

// A ordem da tabela importa: "inventário" contém o sinônimo curto "in" de
// ENTRADA, que vem antes de AJUSTE. Este teste fixa o comportamento herdado
// do legado para que qualquer mudança na tabela seja deliberada.
func TestClassifyMovementTypePrecedencia(t *testing.T) {
	assert.Equal(t, domain.MovementEntrada, domain.ClassifyMovementType("inventario"))
	assert.Equal(t, domain.MovementEntrada, domain.ClassifyMovementType("saida de inventario"))
}
