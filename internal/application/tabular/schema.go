// Package tabular implementa o motor de importação de planilhas genéricas:
// detecção de cabeçalhos em grades [][]string, sugestão de mapeamento de
// colunas por schema (regex + similaridade + amostragem de tipos) e
// processamento linha a linha com parse de datas BR, números com separador
// de milhar e sinalizadores de risco GHS.
package tabular

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Mode seleciona o schema alvo da importação.
type Mode string

const (
	// ModeMaster cadastro de itens (uma linha por lote).
	ModeMaster Mode = "MASTER"
	// ModeHistory histórico de movimentações.
	ModeHistory Mode = "HISTORY"
)

// ColumnType tipo de dado esperado em uma coluna do schema.
type ColumnType string

const (
	TypeString  ColumnType = "string"
	TypeNumber  ColumnType = "number"
	TypeDate    ColumnType = "date"
	TypeBoolean ColumnType = "boolean"
	TypeRisks   ColumnType = "risks"
)

// ColumnDef definição de uma coluna esperada pelo schema de importação.
// Patterns casam contra o cabeçalho cru, normalizado e limpo de prefixos de
// banco; Validate (opcional) valida o valor numérico já parseado.
type ColumnDef struct {
	Key      string
	Label    string
	Required bool
	Patterns []*regexp.Regexp
	Type     ColumnType
	Validate func(decimal.Decimal) bool
	ErrorMsg string
}

func res(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

var masterSchema = []ColumnDef{
	{Key: "name", Label: "Produto / Descrição", Required: true, Type: TypeString,
		Patterns: res(`nome`, `produto`, `descricao`, `descri`, `material`, `item`, `desc\.`, `denominacao`, `description`)},
	{Key: "sapCode", Label: "Código SAP / SKU", Type: TypeString,
		Patterns: res(`sap`, `sku`, `cod`, `cód`, `artigo`, `part.*number`, `ref`, `^cdsap$`, `^id$`)},
	{Key: "lotNumber", Label: "Lote / Série", Type: TypeString,
		Patterns: res(`^lote$`, `batch`, `serie`, `série`, `lot`, `n_lote`, `control`)},
	{Key: "baseUnit", Label: "Unidade (UN/L/Kg)", Type: TypeString,
		Patterns: res(`un`, `medida`, `emb`, `unit`, `u\.m`, `unidade`, `uom`)},
	{Key: "expiryDate", Label: "Validade", Type: TypeDate,
		Patterns: res(`val`, `venc`, `vcto`, `exp`, `shelf`, `validade`, `data.*val`)},
	{Key: "category", Label: "Categoria", Type: TypeString,
		Patterns: res(`cat`, `grupo`, `tipo`, `fam`, `classe`)},
	{Key: "supplier", Label: "Fornecedor", Type: TypeString,
		Patterns: res(`fabr`, `forn`, `marca`, `brand`, `manuf`, `vendor`)},
	{Key: "warehouse", Label: "Local (Armazém)", Type: TypeString,
		Patterns: res(`local`, `armazem`, `sala`, `almox`, `deposito`, `setor`, `lab`)},
	{Key: "cabinet", Label: "Armário/Geladeira", Type: TypeString,
		Patterns: res(`armario`, `geladeira`, `freezer`, `bancada`, `gaveta`, `cabinet`)},
	{Key: "minStockLevel", Label: "Estoque Mínimo", Type: TypeNumber,
		Patterns: res(`min`, `alerta`, `ponto.*repo`, `seguranca`, `reorder`)},
	{Key: "casNumber", Label: "CAS Number", Type: TypeString,
		Patterns: res(`cas`, `registro.*quimico`, `chemical`)},

	// Colunas GHS individuais (uma coluna por pictograma, match estrito)
	{Key: "risk_O", Label: "GHS: O (Oxidante)", Type: TypeBoolean, Patterns: res(`^O$`, `^Oxidante$`, `^GHS03$`)},
	{Key: "risk_T", Label: "GHS: T (Tóxico)", Type: TypeBoolean, Patterns: res(`^T$`, `^Toxico$`, `^GHS06$`)},
	{Key: "risk_T_PLUS", Label: "GHS: T+ (Muito Tóxico)", Type: TypeBoolean, Patterns: res(`^T\+$`, `^Muito Toxico$`)},
	{Key: "risk_C", Label: "GHS: C (Corrosivo)", Type: TypeBoolean, Patterns: res(`^C$`, `^Corrosivo$`, `^GHS05$`)},
	{Key: "risk_E", Label: "GHS: E (Explosivo)", Type: TypeBoolean, Patterns: res(`^E$`, `^Explosivo$`, `^GHS01$`)},
	{Key: "risk_N", Label: "GHS: N (Ambiental)", Type: TypeBoolean, Patterns: res(`^N$`, `^Ambiental$`, `^Meio Ambiente$`, `^GHS09$`)},
	{Key: "risk_Xn", Label: "GHS: Xn (Nocivo)", Type: TypeBoolean, Patterns: res(`^Xn$`, `^Nocivo$`, `^GHS07$`)},
	{Key: "risk_Xi", Label: "GHS: Xi (Irritante)", Type: TypeBoolean, Patterns: res(`^Xi$`, `^Irritante$`)},
	{Key: "risk_F", Label: "GHS: F (Inflamável)", Type: TypeBoolean, Patterns: res(`^F$`, `^Inflamavel$`, `^GHS02$`)},
	{Key: "risk_F_PLUS", Label: "GHS: F+ (Ext. Inflamável)", Type: TypeBoolean, Patterns: res(`^F\+$`, `^Extremamente Inflamavel$`)},

	// Fallback: coluna única de riscos em texto livre
	{Key: "risks", Label: "Riscos (Texto Geral)", Type: TypeRisks,
		Patterns: res(`risc`, `ghs`, `perig`, `seguranca`, `msds`, `class.*risco`)},
}

var historySchema = []ColumnDef{
	{Key: "date", Label: "Data", Required: true, Type: TypeDate,
		Patterns: res(`data`, `date`, `dia`, `hora`, `dt\.`, `emissao`, `movimentacao`)},
	{Key: "type", Label: "Tipo (Ent/Sai)", Required: true, Type: TypeString,
		Patterns: res(`tipo`, `oper`, `mov`, `natureza`, `transacao`, `action`)},
	{Key: "productName", Label: "Produto", Type: TypeString,
		Patterns: res(`nome`, `prod`, `desc`, `material`)},
	{Key: "quantity", Label: "Quantidade", Required: true, Type: TypeNumber,
		Patterns: res(`qtd`, `quant`, `volume`, `qt_mov`),
		Validate: func(d decimal.Decimal) bool { return d.IsPositive() },
		ErrorMsg: "deve ser maior que zero"},
	{Key: "sapCode", Label: "Código SAP", Type: TypeString, Patterns: res(`sap`, `cod`, `sku`)},
	{Key: "lotNumber", Label: "Lote", Type: TypeString, Patterns: res(`^lote$`, `batch`)},
	{Key: "unit", Label: "Unidade", Type: TypeString, Patterns: res(`unid`, `medida`)},
	{Key: "observation", Label: "Observação", Type: TypeString, Patterns: res(`obs`, `motivo`, `justif`, `nota`, `hist`)},
	{Key: "supplier", Label: "Origem/Destino", Type: TypeString, Patterns: res(`forn`, `origem`, `destino`, `fabr`)},
	{Key: "warehouse", Label: "Local", Type: TypeString, Patterns: res(`local`, `armazem`)},
}

// Schema devolve as definições de coluna do modo de importação.
func Schema(mode Mode) []ColumnDef {
	if mode == ModeMaster {
		return masterSchema
	}
	return historySchema
}
