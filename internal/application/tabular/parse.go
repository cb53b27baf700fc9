package tabular

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmendes/labstock/internal/domain/entity"
)

var (
	ptBrDateRe = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})`)
	isoDateRe  = regexp.MustCompile(`^(\d{4})[/.-](\d{1,2})[/.-](\d{1,2})`)
	serialRe   = regexp.MustCompile(`^\d+(\.\d+)?$`)
	currencyRe = regexp.MustCompile(`[R$€£\s]`)
	boolTrueRe = regexp.MustCompile(`(?i)^(x|s|sim|y|yes|v|true|1|ok)$`)
)

// Dia zero do calendário serial do Excel (sistema 1900) em dias Unix.
const excelEpochOffset = 25569

// ParseDate interpreta datas de planilha em ISO (AAAA-MM-DD): serial do
// Excel, DD/MM/AAAA (e variações com . ou -) ou AAAA-MM-DD. Datas
// irreconhecíveis ou anteriores a 1900/1990 devolvem ok=false.
func ParseDate(value string) (string, bool) {
	str := strings.TrimSpace(value)
	if str == "" {
		return "", false
	}

	// Serial do Excel: número de dias desde 1900. Valores baixos quase nunca
	// são datas do domínio, então são rejeitados.
	if serialRe.MatchString(str) {
		serial, err := decimal.NewFromString(str)
		if err != nil || serial.LessThan(decimal.NewFromInt(1000)) {
			return "", false
		}
		days := serial.IntPart() - excelEpochOffset
		t := time.Unix(days*86400, 0).UTC()
		if t.Year() < 1990 {
			return "", false
		}
		return t.Format("2006-01-02"), true
	}

	if m := ptBrDateRe.FindStringSubmatch(str); m != nil {
		day := atoi(m[1])
		month := atoi(m[2])
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() > 1900 {
			return t.Format("2006-01-02"), true
		}
	}

	if m := isoDateRe.FindStringSubmatch(str); m != nil {
		t := time.Date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]), 0, 0, 0, 0, time.UTC)
		return t.Format("2006-01-02"), true
	}

	return "", false
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// ParseNumber interpreta números de planilha com símbolo de moeda e separador
// de milhar em qualquer convenção: "1.234,56" (BR) e "1,234.56" (US) parseiam
// para o mesmo valor. O último separador presente decide qual é o decimal.
func ParseNumber(value string) (decimal.Decimal, bool) {
	str := currencyRe.ReplaceAllString(strings.TrimSpace(value), "")
	if str == "" {
		return decimal.Zero, false
	}

	lastComma := strings.LastIndex(str, ",")
	lastDot := strings.LastIndex(str, ".")

	if lastComma > lastDot {
		str = strings.ReplaceAll(str, ".", "")
		str = strings.Replace(str, ",", ".", 1)
		// vírgulas de milhar à esquerda da decimal já viraram parte do inteiro
		str = strings.ReplaceAll(str, ",", "")
	} else if lastDot > -1 {
		str = strings.ReplaceAll(str, ",", "")
	}

	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseBool aceita os marcadores usuais de planilha: X, S, Sim, Y, Yes, V,
// True, 1, Ok (sem distinção de caixa).
func ParseBool(value string) bool {
	return boolTrueRe.MatchString(strings.TrimSpace(value))
}

// riskKeywords palavras-chave da coluna de riscos em texto livre, por flag.
var riskKeywords = []struct {
	set   func(*entity.RiskFlags)
	terms []string
}{
	{func(r *entity.RiskFlags) { r.E = true }, []string{"GHS01", "EXPLOSIV", "BOMBA"}},
	{func(r *entity.RiskFlags) { r.F = true }, []string{"GHS02", "INFLAM", "FOGO", "FIRE", "FLAM"}},
	{func(r *entity.RiskFlags) { r.FPlus = true }, []string{"EXTREMAMENTE", "F+", "EXTR."}},
	{func(r *entity.RiskFlags) { r.O = true }, []string{"GHS03", "OXID", "COMBUR", "O2"}},
	{func(r *entity.RiskFlags) { r.C = true }, []string{"GHS05", "CORROS", "ACID", "BASE", "CAUSTIC"}},
	{func(r *entity.RiskFlags) { r.T = true }, []string{"GHS06", "TOXIC", "VENEN", "POISON"}},
	{func(r *entity.RiskFlags) { r.TPlus = true }, []string{"MUITO TOXIC", "T+", "GRAVE", "CANCER", "MUTAGEN"}},
	{func(r *entity.RiskFlags) { r.N = true }, []string{"GHS09", "AMBIEN", "POLU", "PEIXE"}},
	{func(r *entity.RiskFlags) { r.Xn = true }, []string{"GHS07", "NOCIV", "IRRIT", "XN", "HARMFUL"}},
	{func(r *entity.RiskFlags) { r.Xi = true }, []string{"XI", "IRRITANT"}},
}

// ParseRisks extrai sinalizadores GHS de um texto livre de riscos
// ("Inflamável, corrosivo" -> F+C) acumulando sobre flags já marcadas.
func ParseRisks(text string, flags *entity.RiskFlags) {
	upper := strings.ToUpper(text)
	for _, kw := range riskKeywords {
		for _, term := range kw.terms {
			if strings.Contains(upper, term) {
				kw.set(flags)
				break
			}
		}
	}
}
