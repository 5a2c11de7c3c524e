package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCollapsesWhitespace(t *testing.T) {
	got := Summary("O contrato  prevê   multa de 2%")
	assert.Equal(t, "O contrato prevê multa de 2%", got)
}

func TestSummaryRejoinsSpacedWord(t *testing.T) {
	got := Summary("obrigação de p a g a m e n t o mensal")
	assert.Equal(t, "obrigação de pagamento mensal", got)
}

func TestSummaryKeepsShortLetterRuns(t *testing.T) {
	// "e a" é conjunção mais artigo, não palavra soletrada
	got := Summary("locador e a locatária")
	assert.Equal(t, "locador e a locatária", got)
}

func TestSummaryFixesPunctuationSpacing(t *testing.T) {
	got := Summary("multa ,juros e correção ; nada mais")
	assert.Equal(t, "multa, juros e correção; nada mais", got)
}

func TestSummaryCurrencyMarker(t *testing.T) {
	got := Summary("multa de R$   1.500,00 por atraso")
	assert.Equal(t, "multa de R$ 1.500,00 por atraso", got)
}

func TestSummaryBreaksBeforeLeadIns(t *testing.T) {
	got := Summary("O contrato rege a locação. Cláusula 5ª trata da multa.")
	assert.Equal(t, "O contrato rege a locação.\n\nCláusula 5ª trata da multa.", got)
}

func TestSummaryNonBreakingSpace(t *testing.T) {
	got := Summary("multa de 2%")
	assert.Equal(t, "multa de 2%", got)
}

func TestSummaryEmpty(t *testing.T) {
	assert.Equal(t, "", Summary(""))
}

func TestSummaryIdempotent(t *testing.T) {
	in := "obrigação de p a g a m e n t o ,com multa de R$  1.500,00. Cláusula 5ª fixa o foro."
	once := Summary(in)
	twice := Summary(once)
	assert.Equal(t, once, twice)
}
