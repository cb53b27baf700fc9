package domain

import "strings"

// MovementType tipo fechado de movimentação de estoque.
type MovementType string

// Tipos de movimentação reconhecidos pelo replay do ledger.
const (
	MovementEntrada MovementType = "ENTRADA" // soma ao saldo
	MovementSaida   MovementType = "SAIDA"   // subtrai do saldo
	MovementAjuste  MovementType = "AJUSTE"  // apenas registrado, não altera saldo
)

// typeRule associa um tipo a seus sinônimos (match por substring, minúsculas).
type typeRule struct {
	tipo     MovementType
	keywords []string
	exact    []string
}

// Tabela de sinônimos na ordem de precedência. Os termos vêm dos sistemas
// legados observados (SAP, planilhas de almoxarifado e dumps do LIMS).
var typeRules = []typeRule{
	{
		tipo:     MovementEntrada,
		keywords: []string{"entrada", "compra", "receb", "aquis", "dev", "in"},
		exact:    []string{"e"},
	},
	{
		tipo:     MovementSaida,
		keywords: []string{"saida", "saída", "consum", "baixa", "venda", "desc", "out", "doaç"},
		exact:    []string{"s"},
	},
	{
		tipo:     MovementAjuste,
		keywords: []string{"ajuste", "invent", "corr", "audit"},
	},
}

// ClassifyMovementType converte o texto livre de tipo de movimentação dos
// dumps legados em um MovementType. Texto não reconhecido vira AJUSTE.
func ClassifyMovementType(raw string) MovementType {
	t := strings.TrimSpace(strings.ToLower(raw))

	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.tipo
			}
		}
		for _, ex := range rule.exact {
			if t == ex {
				return rule.tipo
			}
		}
	}

	return MovementAjuste
}
