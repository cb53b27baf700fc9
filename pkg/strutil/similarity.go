package strutil

import "strings"

// Levenshtein calcula a distância de edição entre duas strings (por runa).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if rb[i-1] == ra[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(curr[j-1]+1, prev[j]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

// Similarity compara duas strings na forma normalizada e devolve um score em
// [0, 1]: 1.0 para iguais, 0.95 quando uma contém a outra, senão baseada na
// distância de Levenshtein relativa ao comprimento maior.
func Similarity(header, keyword string) float64 {
	h := Normalize(header)
	k := Normalize(keyword)

	if h == k {
		return 1.0
	}
	if strings.Contains(h, k) || strings.Contains(k, h) {
		return 0.95
	}

	longer := h
	if len(k) > len(h) {
		longer = k
	}
	if len(longer) == 0 {
		return 1.0
	}
	dist := Levenshtein(h, k)
	return float64(len(longer)-dist) / float64(len(longer))
}
