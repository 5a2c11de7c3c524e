// Package retrieval divide o texto do contrato em trechos delimitados por
// parágrafo e ranqueia esses trechos contra uma consulta usando TF-IDF com
// similaridade de cosseno. É usado tanto para montar contexto de perguntas
// quanto para reduzir o número de chunks de uma análise longa.
package retrieval

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fvictoor/analisador-contrato/vars"
)

// SplitParagraphs agrupa parágrafos consecutivos até o orçamento de runas,
// sem nunca quebrar um parágrafo no meio — a menos que ele sozinho exceda o
// orçamento, caso em que é quebrado preferindo fim de sentença.
func SplitParagraphs(text string, budget int) []string {
	if budget <= 0 {
		budget = vars.ChunkMaxChars
	}
	var chunks []string
	var buf []string
	curLen := 0

	flush := func() {
		if len(buf) > 0 {
			chunks = append(chunks, strings.Join(buf, "\n"))
			buf = nil
			curLen = 0
		}
	}

	for _, para := range strings.Split(text, "\n") {
		p := strings.TrimSpace(para)
		if p == "" {
			continue
		}
		plen := utf8.RuneCountInString(p)
		if plen > budget {
			flush()
			chunks = append(chunks, splitLongParagraph(p, budget)...)
			continue
		}
		if curLen+plen+1 > budget {
			flush()
		}
		buf = append(buf, p)
		curLen += plen + 1
	}
	flush()
	return chunks
}

// splitLongParagraph quebra um parágrafo maior que o orçamento, procurando o
// último fim de sentença dentro da janela antes de cortar a seco.
func splitLongParagraph(p string, budget int) []string {
	var parts []string
	runes := []rune(p)
	start := 0
	for start < len(runes) {
		end := start + budget
		if end >= len(runes) {
			parts = append(parts, strings.TrimSpace(string(runes[start:])))
			break
		}
		cut := -1
		for i := end; i > start; i-- {
			switch runes[i-1] {
			case '.', '!', '?', ';':
				cut = i
			}
			if cut != -1 {
				break
			}
		}
		if cut <= start {
			cut = end
		}
		if s := strings.TrimSpace(string(runes[start:cut])); s != "" {
			parts = append(parts, s)
		}
		start = cut
		for start < len(runes) && runes[start] == ' ' {
			start++
		}
	}
	return parts
}

// TopK devolve os topK trechos do documento mais similares à consulta, do
// mais para o menos relevante. Empate é resolvido pela ordem no documento.
// Documento sem trechos devolve fatia vazia.
func TopK(query, document string, topK int) []string {
	chunks := SplitParagraphs(document, vars.ChunkMaxChars)
	if len(chunks) == 0 || topK <= 0 {
		return []string{}
	}

	sims := Similarities(query, chunks)
	idx := make([]int, len(chunks))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return sims[idx[a]] > sims[idx[b]]
	})

	if topK > len(chunks) {
		topK = len(chunks)
	}
	out := make([]string, 0, topK)
	for _, i := range idx[:topK] {
		out = append(out, chunks[i])
	}
	return out
}

// Similarities calcula a similaridade de cosseno entre a consulta e cada
// trecho num espaço TF-IDF construído sobre trechos + consulta.
func Similarities(query string, chunks []string) []float64 {
	corpus := make([][]string, 0, len(chunks)+1)
	for _, c := range chunks {
		corpus = append(corpus, tokenize(c))
	}
	corpus = append(corpus, tokenize(query))

	// vocabulário e frequência de documento
	vocab := map[string]int{}
	df := map[string]int{}
	for _, doc := range corpus {
		seen := map[string]bool{}
		for _, t := range doc {
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(corpus))
	idf := make([]float64, len(vocab))
	for t, j := range vocab {
		// idf suavizado, para nenhum termo zerar
		idf[j] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vecs := make([][]float64, len(corpus))
	for i, doc := range corpus {
		v := make([]float64, len(vocab))
		for _, t := range doc {
			v[vocab[t]] += idf[vocab[t]]
		}
		normalize(v)
		vecs[i] = v
	}

	qv := vecs[len(vecs)-1]
	sims := make([]float64, len(chunks))
	for i := range chunks {
		sims[i] = dot(qv, vecs[i])
	}
	return sims
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
