package tabular

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rmendes/labstock/internal/domain/entity"
	"github.com/rmendes/labstock/pkg/strutil"
)

// Limites da varredura de detecção.
const (
	detectScanLimit = 100 // linhas inspecionadas em busca de cabeçalho
	sniffSampleSize = 50  // células amostradas por coluna no sniffing
)

// DetectedTable candidato a tabela dentro de uma grade: a linha do cabeçalho
// e uma estimativa de confiança baseada em quantas colunas casam com o schema.
type DetectedTable struct {
	RowIndex         int
	Confidence       int
	Preview          []string
	RowCountEstimate int
}

// Suggestion coluna sugerida para um campo do schema.
type Suggestion struct {
	Column     string
	Confidence int
}

// columnStats fração das células amostradas que parseiam em cada tipo.
type columnStats struct {
	isDate   float64
	isNumber float64
	isBool   float64
}

func headerMatches(def ColumnDef, header string) bool {
	raw := strings.TrimSpace(header)
	norm := strutil.Normalize(header)
	clean := strutil.CleanHeader(header)
	for _, re := range def.Patterns {
		if re.MatchString(raw) || re.MatchString(norm) || re.MatchString(clean) {
			return true
		}
	}
	return false
}

// DetectTables varre as primeiras linhas da grade procurando cabeçalhos que
// casem com o schema do modo. Um candidato precisa de pelo menos duas colunas
// reconhecidas e pelo menos uma linha de dados logo abaixo. O resultado vem
// ordenado por confiança decrescente.
func DetectTables(grid [][]string, mode Mode) []DetectedTable {
	schema := Schema(mode)
	var candidates []DetectedTable

	limit := len(grid)
	if limit > detectScanLimit {
		limit = detectScanLimit
	}

	for i := 0; i < limit; i++ {
		row := grid[i]
		if len(row) == 0 {
			continue
		}

		matchScore := 0
		validColumns := 0
		var preview []string

		for _, cell := range row {
			val := strings.TrimSpace(cell)
			if val == "" {
				continue
			}
			preview = append(preview, val)

			matched := false
			for _, def := range schema {
				if headerMatches(def, val) {
					matchScore += 20
					matched = true
				}
			}
			if matched {
				validColumns++
			}
		}

		if validColumns < 2 || matchScore < 40 {
			continue
		}

		dataRows := 0
		for j := 1; j <= 5 && i+j < len(grid); j++ {
			for _, c := range grid[i+j] {
				if strings.TrimSpace(c) != "" {
					dataRows++
					break
				}
			}
		}
		if dataRows < 1 {
			continue
		}

		confidence := matchScore + validColumns*5 + dataRows*2
		if confidence > 100 {
			confidence = 100
		}
		if len(preview) > 5 {
			preview = preview[:5]
		}
		candidates = append(candidates, DetectedTable{
			RowIndex:         i,
			Confidence:       confidence,
			Preview:          preview,
			RowCountEstimate: len(grid) - i - 1,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Confidence > candidates[b].Confidence
	})
	return candidates
}

func sniffColumn(col int, sample [][]string) columnStats {
	var dates, numbers, bools, total float64

	for _, row := range sample {
		if total >= sniffSampleSize {
			break
		}
		if col >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[col])
		if val == "" {
			continue
		}
		total++

		if _, ok := ParseNumber(val); ok {
			numbers++
		}
		if _, ok := ParseDate(val); ok {
			// data plausível: tem separador de data ou é serial alto do Excel
			if strings.ContainsAny(val, "/.-") || looksLikeSerial(val) {
				dates++
			}
		}
		if ParseBool(val) {
			bools++
		}
	}

	if total == 0 {
		return columnStats{}
	}
	return columnStats{isDate: dates / total, isNumber: numbers / total, isBool: bools / total}
}

func looksLikeSerial(val string) bool {
	d, err := decimal.NewFromString(val)
	return err == nil && d.GreaterThan(decimal.NewFromInt(20000))
}

// SuggestMapping sugere, para cada campo do schema, a coluna da grade que
// melhor o atende. Scoring em três fases: match textual do cabeçalho (regex,
// senão similaridade), ajuste pelo tipo dos dados amostrados e desempates
// específicos (ex.: "qtd minima" não é quantidade movimentada). Campos
// obrigatórios escolhem primeiro e cada coluna atende no máximo um campo.
func SuggestMapping(headers []string, sample [][]string, mode Mode) map[string]Suggestion {
	schema := Schema(mode)
	mapping := make(map[string]Suggestion)
	used := make(map[string]bool)

	stats := make([]columnStats, len(headers))
	for i, h := range headers {
		if h != "" {
			stats[i] = sniffColumn(i, sample)
		}
	}

	ordered := make([]ColumnDef, len(schema))
	copy(ordered, schema)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Required && !ordered[b].Required
	})

	for _, field := range ordered {
		bestMatch := ""
		bestScore := 0.0

		for i, header := range headers {
			if header == "" || used[header] {
				continue
			}

			var score float64
			raw := strings.TrimSpace(header)

			if headerMatches(field, header) {
				score = 90
				// match exato no cabeçalho cru desempata colunas GHS curtas ("F", "O")
				if field.Type == TypeBoolean && strings.HasPrefix(field.Key, "risk_") {
					for _, re := range field.Patterns {
						if re.MatchString(raw) {
							score += 5
							break
						}
					}
				}
			} else {
				simLabel := strutil.Similarity(header, field.Label)
				simKey := strutil.Similarity(strutil.CleanHeader(header), field.Key)
				score = max(simLabel, simKey) * 60
			}

			st := stats[i]
			switch field.Type {
			case TypeDate:
				if st.isDate > 0.5 {
					score += 20
				} else if st.isNumber < 0.1 && score > 0 {
					score -= 40
				}
			case TypeNumber:
				if st.isNumber > 0.7 {
					score += 15
				} else if st.isNumber < 0.1 {
					score -= 60
				}
			case TypeBoolean:
				if st.isBool > 0.1 {
					score += 20
				}
			}

			if field.Key == "quantity" {
				norm := strutil.Normalize(header)
				if strings.Contains(norm, "min") || strings.Contains(norm, "critico") {
					score -= 50
				}
			}

			if score > bestScore {
				bestScore = score
				bestMatch = header
			}
		}

		if bestScore >= 50 && !used[bestMatch] {
			conf := int(bestScore + 0.5)
			if conf > 100 {
				conf = 100
			}
			mapping[field.Key] = Suggestion{Column: bestMatch, Confidence: conf}
			used[bestMatch] = true
		}
	}

	return mapping
}

// ImportedRow linha processada e tipada (união dos campos dos dois schemas;
// o modo decide quais são preenchidos).
type ImportedRow struct {
	Name          string
	SAPCode       string
	LotNumber     string
	BaseUnit      string
	ExpiryDate    string
	Category      string
	Supplier      string
	Warehouse     string
	Cabinet       string
	MinStockLevel decimal.Decimal
	CASNumber     string

	Date        string
	Type        string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	Observation string

	Risks entity.RiskFlags
}

// RowResult resultado da validação de uma linha.
type RowResult struct {
	Row    ImportedRow
	Valid  bool
	Errors []string
}

// ProcessRow aplica o mapeamento campo→coluna a uma linha e converte cada
// valor para o tipo do schema. Campo obrigatório ausente ou inválido marca a
// linha como inválida mas não interrompe o processamento dos demais campos.
// Os sinalizadores de risco acumulam tanto das colunas GHS individuais quanto
// da coluna de texto livre.
func ProcessRow(row map[string]string, mapping map[string]string, mode Mode) RowResult {
	result := RowResult{Valid: true}

	for _, field := range Schema(mode) {
		var value string
		if col, ok := mapping[field.Key]; ok {
			value = strings.TrimSpace(row[col])
		}

		if value == "" {
			if field.Required {
				result.Valid = false
				result.Errors = append(result.Errors, field.Label+" é obrigatório")
			}
			continue
		}

		switch {
		case field.Key == "baseUnit" || field.Key == "unit":
			setString(&result.Row, field.Key, strutil.NormalizeUnit(value))

		case field.Type == TypeBoolean && strings.HasPrefix(field.Key, "risk_"):
			if ParseBool(value) {
				setRiskFlag(&result.Row.Risks, strings.TrimPrefix(field.Key, "risk_"))
			}

		case field.Type == TypeRisks:
			ParseRisks(value, &result.Row.Risks)

		case field.Type == TypeNumber:
			num, ok := ParseNumber(value)
			if !ok {
				if field.Required {
					result.Valid = false
					result.Errors = append(result.Errors, field.Label+": número inválido")
				}
				break
			}
			if field.Validate != nil && !field.Validate(num) {
				result.Valid = false
				msg := field.ErrorMsg
				if msg == "" {
					msg = "valor inválido"
				}
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", field.Label, msg))
			}
			setNumber(&result.Row, field.Key, num)

		case field.Type == TypeDate:
			dt, ok := ParseDate(value)
			if !ok {
				if field.Required {
					result.Valid = false
					result.Errors = append(result.Errors, field.Label+": data inválida")
				}
				break
			}
			setString(&result.Row, field.Key, dt)

		default:
			setString(&result.Row, field.Key, value)
		}
	}

	return result
}

func setString(r *ImportedRow, key, value string) {
	switch key {
	case "name":
		r.Name = value
	case "sapCode":
		r.SAPCode = value
	case "lotNumber":
		r.LotNumber = value
	case "baseUnit":
		r.BaseUnit = value
	case "expiryDate":
		r.ExpiryDate = value
	case "category":
		r.Category = value
	case "supplier":
		r.Supplier = value
	case "warehouse":
		r.Warehouse = value
	case "cabinet":
		r.Cabinet = value
	case "casNumber":
		r.CASNumber = value
	case "date":
		r.Date = value
	case "type":
		r.Type = value
	case "productName":
		r.ProductName = value
	case "unit":
		r.Unit = value
	case "observation":
		r.Observation = value
	}
}

func setNumber(r *ImportedRow, key string, value decimal.Decimal) {
	switch key {
	case "minStockLevel":
		r.MinStockLevel = value
	case "quantity":
		r.Quantity = value
	}
}

func setRiskFlag(flags *entity.RiskFlags, code string) {
	switch code {
	case "O":
		flags.O = true
	case "T":
		flags.T = true
	case "T_PLUS":
		flags.TPlus = true
	case "C":
		flags.C = true
	case "E":
		flags.E = true
	case "N":
		flags.N = true
	case "Xn":
		flags.Xn = true
	case "Xi":
		flags.Xi = true
	case "F":
		flags.F = true
	case "F_PLUS":
		flags.FPlus = true
	}
}
