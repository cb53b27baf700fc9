package strutil

import (
	"regexp"
	"strings"
)

// Dicionário de correções e expansões comuns de laboratório.
// Cobre erros de digitação recorrentes nos dumps e abreviações químicas.
var productCorrections = map[string]string{
	// Erros comuns (typos)
	"ERLEMEYER":        "ERLENMEYER",
	"ERLEMMEYER":       "ERLENMEYER",
	"PISETA":           "PISSETA",
	"DESECADOR":        "DESSECADOR",
	"ALCOL":            "ÁLCOOL",
	"ALCOOL":           "ÁLCOOL",
	"FEROVER":          "FERROVER",
	"KITASATO":         "KITASSATO",
	"BARAMAGNÉTICA":    "BARRA MAGNÉTICA",
	"BARAMAGNETICA":    "BARRA MAGNÉTICA",
	"CONDUTIVIMETRO":   "CONDUTIVÍMETRO",
	"TERMOCOMPENSADOR": "TERMOLIQUIDO",
	"ALMOXARIZ":        "ALMOFARIZ",

	// Abreviações químicas
	"AC":         "ÁCIDO",
	"AC.":        "ÁCIDO",
	"ACIDO":      "ÁCIDO",
	"SOL":        "SOLUÇÃO",
	"SOL.":       "SOLUÇÃO",
	"SOLUCAO":    "SOLUÇÃO",
	"HIDROX":     "HIDRÓXIDO",
	"HIDROX.":    "HIDRÓXIDO",
	"HIDROXIDO":  "HIDRÓXIDO",
	"CLOR":       "CLORETO",
	"CLOR.":      "CLORETO",
	"SULF":       "SULFATO",
	"SULF.":      "SULFATO",
	"SULFURICO":  "SULFÚRICO",
	"CLORIDRICO": "CLORÍDRICO",
	"ACETICO":    "ACÉTICO",
	"AMONIO":     "AMÔNIO",
	"POTASSIO":   "POTÁSSIO",
	"POTASIO":    "POTÁSSIO",
	"SODIO":      "SÓDIO",
	"CALCIO":     "CÁLCIO",
	"NITRILICA":  "NITRÍLICA",
	"LATEX":      "LÁTEX",
	"TAMPAO":     "TAMPÃO",
	"PADRAO":     "PADRÃO",
	"ANALISE":    "ANÁLISE",
	"SILICA":     "SÍLICA",
	"ORGANICOS":  "ORGÂNICOS",
	"BENZOICO":   "BENZÓICO",
	"MONOBASICO": "MONOBÁSICO",
	"CITRICO":    "CÍTRICO",
	"AGUAS":      "ÁGUAS",
}

var (
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	dottedPairRe  = regexp.MustCompile(`([A-Z])\.([A-Z])`)
	purityGradeRe = regexp.MustCompile(`(?i)\b(P\.?A\.?|U\.?S\.?P\.?|H\.?P\.?L\.?C\.?)\b`)
	percentRe     = regexp.MustCompile(`\s*%\s*`)
	hydrationRe   = regexp.MustCompile(`(?i)(\d*)\s*H2O`) // ex: 2 H2O -> 2H2O
	tokenTailRe   = regexp.MustCompile(`[^A-Z0-9ÁÉÍÓÚÂÊÔÃÕÇ%/-]+$`)
)

// SanitizeProductName higieniza nomes de produto vindos dos dumps: separadores
// sujos, espaços múltiplos, graus de pureza (P.A., U.S.P., H.P.L.C.), símbolos
// e o dicionário de correções ortográficas de laboratório.
func SanitizeProductName(rawName string) string {
	if strings.TrimSpace(rawName) == "" {
		return "Item Desconhecido"
	}

	clean := strings.ToUpper(strings.TrimSpace(rawName))

	// Separadores "sujos"
	clean = strings.ReplaceAll(clean, "_", " ")
	clean = dottedPairRe.ReplaceAllString(clean, "$1 $2")

	clean = strings.TrimSpace(multiSpaceRe.ReplaceAllString(clean, " "))

	// Graus de pureza
	clean = purityGradeRe.ReplaceAllStringFunc(clean, func(match string) string {
		switch strings.ReplaceAll(match, ".", "") + "." {
		case "PA.":
			return "P.A."
		case "USP.":
			return "U.S.P."
		case "HPLC.":
			return "H.P.L.C."
		}
		return match
	})

	// Símbolos
	clean = percentRe.ReplaceAllString(clean, "%")
	clean = hydrationRe.ReplaceAllString(clean, "${1}H2O")

	// Tokenização e correção ortográfica
	tokens := strings.Split(clean, " ")
	for i, token := range tokens {
		if token != "P.A." && token != "U.S.P." {
			token = tokenTailRe.ReplaceAllString(token, "")
		}
		if fixed, ok := productCorrections[token]; ok {
			token = fixed
		}
		tokens[i] = token
	}

	return strings.Join(tokens, " ")
}
