package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fvictoor/analisador-contrato/types"
)

const missingField = "-"

// Parties agrupa as partes por nome normalizado (trim, espaços internos
// colapsados, caixa baixa) e funde cada grupo num registro único: primeiro
// nome cru observado, tipo mais frequente, papéis como conjunto ordenado e
// documentos concatenados como texto de exibição. Saída ordenada por nome.
func Parties(items []types.Parte) []types.Parte {
	type group struct {
		nome   string
		tipos  []string
		papeis []string
		docs   []string
	}
	groups := map[string]*group{}
	var order []string

	for _, p := range items {
		key := partyKey(p.Nome)
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		if g.nome == "" {
			g.nome = strings.TrimSpace(p.Nome)
		}
		if t := strings.TrimSpace(p.Tipo); t != "" {
			g.tipos = append(g.tipos, t)
		}
		if papel := strings.TrimSpace(p.Papel); papel != "" && !containsStr(g.papeis, papel) {
			g.papeis = append(g.papeis, papel)
		}
		if doc := renderDocs(p.Documentos); doc != "" && !containsStr(g.docs, doc) {
			g.docs = append(g.docs, doc)
		}
	}

	out := make([]types.Parte, 0, len(order))
	for _, key := range order {
		g := groups[key]
		papeis := append([]string{}, g.papeis...)
		sort.Strings(papeis)

		p := types.Parte{
			Nome:       orDash(g.nome),
			Tipo:       orDash(mostFrequent(g.tipos)),
			Papel:      orDash(strings.Join(papeis, ", ")),
			Documentos: orDash(strings.Join(g.docs, "; ")),
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Nome) < strings.ToLower(out[j].Nome)
	})
	return out
}

func partyKey(nome string) string {
	return strings.ToLower(strings.Join(strings.Fields(nome), " "))
}

// mostFrequent devolve o valor mais observado; empate fica com o primeiro.
func mostFrequent(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	counts := map[string]int{}
	best, bestCount := "", 0
	for _, v := range vals {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// renderDocs converte o campo documentos (string, número, lista ou objeto)
// para texto de exibição. Valores não reconhecidos caem em fmt.Sprintf.
func renderDocs(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(d)
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	case []any:
		var parts []string
		for _, item := range d {
			if s := renderDocs(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			if s := renderDocs(d[k]); s != "" {
				parts = append(parts, k+": "+s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", d))
	}
}

func orDash(s string) string {
	if s == "" {
		return missingField
	}
	return s
}

func containsStr(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
