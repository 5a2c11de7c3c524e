package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Frases que abrem seção em resumo jurídico; ganham quebra de parágrafo.
var leadIns = []string{
	"Cláusula ",
	"CLÁUSULA ",
	"Parágrafo único",
	"Artigo ",
	"Art. ",
	"Foro de eleição",
}

var (
	splitDiacritic   = regexp.MustCompile(`(\p{L}) ([\x{0300}-\x{036f}])`)
	spaceBeforePunct = regexp.MustCompile(`\s+([,.;:!?])`)
	punctNoSpace     = regexp.MustCompile(`([,;:!?])(\p{L})`)
	currencyGap      = regexp.MustCompile(`R\$\s+`)
	multiSpace       = regexp.MustCompile(` {2,}`)
)

// Summary é o reparo textual best-effort do resumo em passada única: espaço
// irregular, acentos descolados da letra, palavras soletradas, pontuação e
// marcador de moeda. Qualquer pânico interno devolve o texto original.
func Summary(s string) (out string) {
	out = s
	defer func() {
		if recover() != nil {
			out = s
		}
	}()
	if s == "" {
		return s
	}

	t := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ', '\t':
			return ' '
		case '​', '‌', '‍', '\uFEFF':
			return -1
		}
		return r
	}, s)

	t = splitDiacritic.ReplaceAllString(t, "$1$2")
	t = rejoinSpacedLetters(t)
	t = spaceBeforePunct.ReplaceAllString(t, "$1")
	t = punctNoSpace.ReplaceAllString(t, "$1 $2")
	t = currencyGap.ReplaceAllString(t, "R$ ")
	t = multiSpace.ReplaceAllString(t, " ")

	for _, phrase := range leadIns {
		t = strings.ReplaceAll(t, " "+phrase, "\n\n"+phrase)
	}

	out = strings.TrimSpace(t)
	return out
}

// rejoinSpacedLetters junta sequências de três ou mais letras soltas
// ("p a g a m e n t o") de volta numa palavra. Abaixo de três tokens a
// chance de falso positivo ("e a") é alta demais.
func rejoinSpacedLetters(t string) string {
	tokens := strings.Split(t, " ")
	var out []string
	i := 0
	for i < len(tokens) {
		j := i
		for j < len(tokens) && isSingleLetter(tokens[j]) {
			j++
		}
		if j-i >= 3 {
			out = append(out, strings.Join(tokens[i:j], ""))
			i = j
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return strings.Join(out, " ")
}

func isSingleLetter(tok string) bool {
	if utf8.RuneCountInString(tok) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLetter(r)
}
