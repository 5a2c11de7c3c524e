package analyze

import (
	"fmt"
	"strings"

	"github.com/fvictoor/analisador-contrato/types"
)

const keySep = "\x1f"

// aggregator acumula os registros parciais de cada chunk num agregado único,
// descartando entradas cuja chave de unicidade já apareceu nesta rodada.
// Partes entram cruas: a deduplicação por nome é papel do normalizador.
type aggregator struct {
	rec        *types.ContractRecord
	seenDatas  map[string]bool
	seenMultas map[string]bool
	seenComp   map[string]bool
	seenPadrao map[string]bool
	resumos    []string
}

func newAggregator() *aggregator {
	return &aggregator{
		rec:        EnsureSchema(nil),
		seenDatas:  map[string]bool{},
		seenMultas: map[string]bool{},
		seenComp:   map[string]bool{},
		seenPadrao: map[string]bool{},
	}
}

func (a *aggregator) add(part *types.ContractRecord) {
	if part == nil {
		return
	}
	for _, d := range part.DatasVencimento {
		k := dataKey(d)
		if !a.seenDatas[k] {
			a.seenDatas[k] = true
			a.rec.DatasVencimento = append(a.rec.DatasVencimento, d)
		}
	}
	for _, v := range part.ValoresMultas {
		k := multaKey(v)
		if !a.seenMultas[k] {
			a.seenMultas[k] = true
			a.rec.ValoresMultas = append(a.rec.ValoresMultas, v)
		}
	}
	a.rec.Partes = append(a.rec.Partes, part.Partes...)
	for _, c := range part.ClausulasComprometedoras {
		k := c.Titulo + keySep + c.TextoOrigem
		if !a.seenComp[k] {
			a.seenComp[k] = true
			a.rec.ClausulasComprometedoras = append(a.rec.ClausulasComprometedoras, c)
		}
	}
	for _, c := range part.ClausulasPadrao {
		k := c.Tipo + keySep + c.TextoOrigem
		if !a.seenPadrao[k] {
			a.seenPadrao[k] = true
			a.rec.ClausulasPadrao = append(a.rec.ClausulasPadrao, c)
		}
	}
	if a.rec.AnaliseRisco.RiscoGeralNota == 0 {
		a.rec.AnaliseRisco.RiscoGeralNota = part.AnaliseRisco.RiscoGeralNota
	}
	for _, r := range part.AnaliseRisco.TopRiscos {
		if !contains(a.rec.AnaliseRisco.TopRiscos, r) {
			a.rec.AnaliseRisco.TopRiscos = append(a.rec.AnaliseRisco.TopRiscos, r)
		}
	}
	if s := strings.TrimSpace(part.ResumoJuridico); s != "" {
		a.resumos = append(a.resumos, s)
	}
}

// result concatena os resumos parciais na ordem de processamento, até o teto
// de runas.
func (a *aggregator) result(maxSummary int) *types.ContractRecord {
	joined := strings.Join(a.resumos, "\n\n")
	runes := []rune(joined)
	if len(runes) > maxSummary {
		joined = string(runes[:maxSummary])
	}
	a.rec.ResumoJuridico = joined
	return a.rec
}

// Chaves de unicidade por categoria. Multas usam os campos pré-normalização;
// ValorMonetario e Percentual podem ser número ou string, então viram texto.
func dataKey(d types.DataVencimento) string {
	iso := "<null>"
	if d.DataISO != nil {
		iso = *d.DataISO
	}
	return d.Descricao + keySep + iso
}

func multaKey(v types.ValorMulta) string {
	return strings.Join([]string{
		v.Tipo,
		fmt.Sprintf("%v", v.Percentual),
		fmt.Sprintf("%v", v.ValorMonetario),
		v.TextoOrigem,
	}, keySep)
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
