package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmendes/labstock/pkg/strutil"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "acidocloridrico", strutil.Normalize("ÁCIDO CLORÍDRICO"))
	assert.Equal(t, "geral", strutil.Normalize("Geral"))
	assert.Equal(t, "solucaotampaoph7", strutil.Normalize("Solução Tampão pH-7"))
	assert.Equal(t, "", strutil.Normalize(""))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "204813", strutil.Clean(" 204813 "))
	assert.Equal(t, "SSAP", strutil.Clean("S/ SAP"))
	assert.Equal(t, "L1", strutil.Clean("l-1"))
	assert.Equal(t, "", strutil.Clean("///"))
}

func TestCleanHeader(t *testing.T) {
	assert.Equal(t, "produto", strutil.CleanHeader("NM_PRODUTO"))
	assert.Equal(t, "fornecedor", strutil.CleanHeader("fornecedor_id"))
	assert.Equal(t, "validade", strutil.CleanHeader("DT_Validade"))
	assert.Equal(t, "qtdminima", strutil.CleanHeader(" Qtd. Mínima "))
}

func TestNormalizeUnit(t *testing.T) {
	cases := map[string]string{
		"":        "UN",
		"LT":      "L",
		"Litros":  "L",
		"ml":      "ml",
		"QUILO":   "kg",
		"UNID":    "UN",
		"PEÇA":    "UN",
		"caixa":   "CX",
		"FRASCO":  "FRASC", // desconhecida: maiúscula truncada em 5
	}
	for in, want := range cases {
		assert.Equal(t, want, strutil.NormalizeUnit(in), "unidade %q", in)
	}
}

func TestSanitizeProductName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "Item Desconhecido"},
		{"   ", "Item Desconhecido"},
		{"acido cloridrico", "ÁCIDO CLORÍDRICO"},
		{"ALCOOL ETILICO", "ÁLCOOL ETILICO"},
		{"SODA_CAUSTICA", "SODA CAUSTICA"},
		{"ACETONA  PA", "ACETONA P.A."},
		{"SULFATO DE SODIO 2 H2O", "SULFATO DE SÓDIO 2H2O"},
		{"SOLUCAO 10 % ", "SOLUÇÃO 10%"},
		{"ERLEMEYER 250ML", "ERLENMEYER 250ML"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, strutil.SanitizeProductName(tc.in), "nome %q", tc.in)
	}
}

func TestSanitizeProductNameIdempotente(t *testing.T) {
	// Nomes sem grau de pureza: "P.A." não é ponto fixo porque o tratamento
	// de separadores volta a quebrar o token em uma segunda passada.
	names := []string{"acido cloridrico", "ERLEMEYER 250ML", "HIDROX DE SODIO"}
	for _, n := range names {
		once := strutil.SanitizeProductName(n)
		assert.Equal(t, once, strutil.SanitizeProductName(once), "sanitização deve ser estável para %q", n)
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, strutil.Levenshtein("lote", "lote"))
	assert.Equal(t, 1, strutil.Levenshtein("lote", "lotes"))
	assert.Equal(t, 4, strutil.Levenshtein("", "sapc"))
	assert.Equal(t, 3, strutil.Levenshtein("kitten", "sitting"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, strutil.Similarity("Validade", "validade"), 0.001)
	assert.InDelta(t, 0.95, strutil.Similarity("Data de Validade", "validade"), 0.001)
	assert.Greater(t, strutil.Similarity("quantidade", "qtd"), strutil.Similarity("quantidade", "fornecedor"))
}
