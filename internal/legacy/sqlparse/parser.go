// Package sqlparse extrai a lista de valores de fragmentos "INSERT ... VALUES (...)"
// dos dumps DML legados. Não é um parser de SQL: cobre apenas o subconjunto
// que o LIMS de origem gerava (strings entre aspas simples, números e NULL).
package sqlparse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discrimina o tipo de um escalar extraído.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindNull
)

// Scalar valor tipado extraído de uma cláusula VALUES.
type Scalar struct {
	kind Kind
	str  string
	num  decimal.Decimal
}

// String devolve um escalar de texto.
func String(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Number devolve um escalar numérico, preservando a forma textual original.
func Number(raw string, d decimal.Decimal) Scalar {
	return Scalar{kind: KindNumber, str: raw, num: d}
}

// Null devolve o escalar nulo.
func Null() Scalar { return Scalar{kind: KindNull} }

// Kind devolve o discriminador do escalar.
func (s Scalar) Kind() Kind { return s.kind }

// IsNull informa se o escalar é NULL.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// Text forma textual do escalar; NULL vira string vazia.
func (s Scalar) Text() string { return s.str }

// Decimal valor numérico do escalar; ok=false quando não é número.
func (s Scalar) Decimal() (decimal.Decimal, bool) {
	return s.num, s.kind == KindNumber
}

var valuesClauseRe = regexp.MustCompile(`(?i)VALUES\s*\(`)

// ParseInsertValues extrai os escalares da primeira cláusula VALUES (...) de
// um fragmento INSERT (multiline permitido, ");" ou ")" finais opcionais).
// Conteúdo entre aspas simples volta verbatim, sem tratamento de escapes
// (limitação conhecida do formato de dump). Tokens sem aspas viram NULL
// (case-insensitive), número (via decimal) ou string crua, nessa ordem.
// Devolve nil quando não há cláusula VALUES — nunca erro: linha malformada
// é descartada pelo chamador.
func ParseInsertValues(sql string) []Scalar {
	loc := valuesClauseRe.FindStringIndex(sql)
	if loc == nil {
		return nil
	}

	rest := sql[loc[1]:]
	end := strings.LastIndex(rest, ")")
	if end < 0 {
		return nil
	}
	inner := rest[:end]

	values := []Scalar{}
	var raw strings.Builder
	runes := []rune(inner)

	flush := func() {
		tok := strings.TrimSpace(raw.String())
		raw.Reset()
		if tok == "" {
			return
		}
		if strings.EqualFold(tok, "NULL") {
			values = append(values, Null())
			return
		}
		if d, err := decimal.NewFromString(tok); err == nil {
			values = append(values, Number(tok, d))
			return
		}
		values = append(values, String(tok))
	}

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\'':
			// string verbatim até a próxima aspa simples
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				j++
			}
			values = append(values, String(string(runes[i+1:j])))
			raw.Reset()
			i = j
		case ',':
			flush()
		default:
			raw.WriteRune(runes[i])
		}
	}
	flush()

	return values
}
