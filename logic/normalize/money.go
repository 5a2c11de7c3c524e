// Package normalize aplica o pós-processamento sobre o registro extraído:
// valores monetários em formato canônico BRL, partes deduplicadas por nome e
// expansão de expressões "dia X de mês A a mês B" em datas de calendário.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fvictoor/analisador-contrato/types"
)

// Padrão brasileiro: "R$ 1.234,56", "R$1.234", "R$ 123,45". Espaço perdido no
// meio do número (vício comum de extração de PDF) é tolerado.
var brlPattern = regexp.MustCompile(`R\$\s*([\d.\s]+(?:,\d{2})?)`)

// Money normaliza valores_multas: acha o valor em texto_origem e sobrescreve
// valor_monetario com a forma canônica; valor já numérico é só formatado.
// Nunca inventa valor quando nenhum dos dois campos traz um.
func Money(items []types.ValorMulta) []types.ValorMulta {
	out := make([]types.ValorMulta, len(items))
	for i, it := range items {
		if v, ok := ParseBRL(it.TextoOrigem); ok {
			it.ValorMonetario = FormatBRL(v)
			if it.Moeda == "" {
				it.Moeda = "BRL"
			}
		} else if f, ok := numericValue(it.ValorMonetario); ok {
			it.ValorMonetario = FormatBRL(f)
			if it.Moeda == "" {
				it.Moeda = "BRL"
			}
		}
		out[i] = it
	}
	return out
}

// ParseBRL extrai o primeiro valor monetário em padrão brasileiro do texto.
func ParseBRL(text string) (float64, bool) {
	m := brlPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	raw := m[1]
	raw = strings.Join(strings.Fields(raw), "") // espaços perdidos no número
	raw = strings.ReplaceAll(raw, ".", "")      // separador de milhar
	raw = strings.ReplaceAll(raw, ",", ".")     // vírgula decimal
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatBRL formata em moeda BRL com milhares e duas casas decimais.
func FormatBRL(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return "R$ " + sign + strings.Join(groups, ".") + "," + frac
}

// numericValue reconhece os formatos numéricos que o decode de JSON produz.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
