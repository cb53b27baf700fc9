// Package strutil concentra a normalização de texto herdada do LIMS legado:
// chaves naturais (códigos SAP, lotes), nomes de produto e unidades de medida
// chegam sujos dos dumps e precisam de uma forma canônica antes de qualquer
// junção ou geração de identificador.
package strutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Mapa de normalização de unidades de medida (evita duplicidade tipo LT vs L).
var unitMap = map[string]string{
	"L": "L", "LITRO": "L", "LITROS": "L", "LT": "L", "LTS": "L",
	"ML": "ml", "MILILITRO": "ml", "MLS": "ml",
	"KG": "kg", "QUILO": "kg", "KILO": "kg", "QUILOGRAMA": "kg",
	"G": "g", "GR": "g", "GRAMA": "g", "GRAMAS": "g",
	"MG": "mg", "MILIGRAMA": "mg",
	"UN": "UN", "UNID": "UN", "UNIDADE": "UN", "PC": "UN", "PCA": "UN", "PECA": "UN",
	"CX": "CX", "CAIXA": "CX", "BOX": "CX",
	"M": "m", "METRO": "m",
	"CM": "cm", "CENTIMETRO": "cm",
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents descarta marcas diacríticas (Á -> A, ç -> c).
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize produz a forma canônica usada em comparações e hashes de
// identidade: sem acentos, minúscula, apenas [a-z0-9].
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(RemoveAccents(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Clean produz a forma usada em códigos (SAP, lote): maiúscula, apenas [A-Z0-9].
func Clean(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	headerPrefixRe = regexp.MustCompile(`(?i)^(nm|ds|dt|vl|nr|cd|id|tx)_`)
	headerSuffixRe = regexp.MustCompile(`(?i)(_id|_cod)$`)
)

// CleanHeader remove prefixos e sufixos comuns de colunas de banco
// (nm_, ds_, dt_, ..., _id, _cod) e normaliza o restante.
func CleanHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = headerPrefixRe.ReplaceAllString(h, "")
	h = headerSuffixRe.ReplaceAllString(h, "")
	return Normalize(h)
}

// NormalizeUnit padroniza unidades de medida (LT -> L, UNID -> UN).
// Unidade desconhecida volta em maiúscula truncada em 5 caracteres.
func NormalizeUnit(unit string) string {
	if unit == "" {
		return "UN"
	}
	if u, ok := unitMap[Clean(RemoveAccents(unit))]; ok {
		return u
	}
	up := []rune(strings.ToUpper(unit))
	if len(up) > 5 {
		up = up[:5]
	}
	return string(up)
}
