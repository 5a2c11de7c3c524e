package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fvictoor/analisador-contrato/types"
)

// Meses em português, com e sem diacrítico (PDFs costumam perder o ç).
var monthNumbers = map[string]int{
	"janeiro": 1, "fevereiro": 2, "março": 3, "marco": 3, "abril": 4,
	"maio": 5, "junho": 6, "julho": 7, "agosto": 8, "setembro": 9,
	"outubro": 10, "novembro": 11, "dezembro": 12,
}

const monthAlt = `janeiro|fevereiro|março|marco|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro`

var (
	dayPattern   = regexp.MustCompile(`\bdia\s+(\d{1,2})\b`)
	yearPattern  = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	rangePattern = regexp.MustCompile(`\b(` + monthAlt + `)\s+(?:a|até|ate|ao)\s+(` + monthAlt + `)\b`)
	monthPattern = regexp.MustCompile(`\b(` + monthAlt + `)\b`)
)

// Dates expande "dia N de <mês A> a <mês B> de <ano>" em uma entrada concreta
// por mês, reaproveitando descrição e texto de origem. Entradas sem dia+ano
// ficam como estão. Pares (descricao, data_iso) já presentes não se repetem,
// então a expansão é idempotente.
func Dates(entries []types.DataVencimento) []types.DataVencimento {
	out := append([]types.DataVencimento{}, entries...)

	seen := map[string]bool{}
	for _, e := range entries {
		if e.DataISO != nil {
			seen[e.Descricao+"\x1f"+*e.DataISO] = true
		}
	}

	for _, e := range entries {
		text := strings.ToLower(e.Descricao + " " + e.TextoOrigem)

		dayMatch := dayPattern.FindStringSubmatch(text)
		yearMatch := yearPattern.FindStringSubmatch(text)
		if dayMatch == nil || yearMatch == nil {
			continue
		}
		day, err := strconv.Atoi(dayMatch[1])
		if err != nil || day < 1 || day > 31 {
			continue
		}
		year := yearMatch[1]

		for _, m := range matchedMonths(text) {
			iso := fmt.Sprintf("%s-%02d-%02d", year, m, day)
			key := e.Descricao + "\x1f" + iso
			if seen[key] {
				continue
			}
			seen[key] = true
			isoCopy := iso
			out = append(out, types.DataVencimento{
				Descricao:   e.Descricao,
				DataISO:     &isoCopy,
				TextoOrigem: e.TextoOrigem,
			})
		}
	}
	return out
}

// matchedMonths coleta os meses citados, expandindo intervalos explícitos
// "abril a junho" quando os extremos estão em ordem natural.
func matchedMonths(text string) []int {
	var months []int
	add := func(m int) {
		for _, x := range months {
			if x == m {
				return
			}
		}
		months = append(months, m)
	}

	if rm := rangePattern.FindStringSubmatch(text); rm != nil {
		a := monthNumbers[rm[1]]
		b := monthNumbers[rm[2]]
		if a != 0 && b != 0 && a <= b {
			for m := a; m <= b; m++ {
				add(m)
			}
		}
	}
	for _, mm := range monthPattern.FindAllStringSubmatch(text, -1) {
		if m := monthNumbers[mm[1]]; m != 0 {
			add(m)
		}
	}
	return months
}
