package analyze

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvictoor/analisador-contrato/logic/chat"
)

// stubLLM devolve respostas roteirizadas e grava cada chamada recebida.
type stubLLM struct {
	calls   []chat.Params
	prompts []string
	respond func(call int, user string) (string, error)
}

func (s *stubLLM) Complete(_ context.Context, msgs []*schema.Message, p chat.Params) (string, error) {
	user := msgs[len(msgs)-1].Content
	s.calls = append(s.calls, p)
	s.prompts = append(s.prompts, user)
	return s.respond(len(s.calls)-1, user)
}

func always(json string) func(int, string) (string, error) {
	return func(int, string) (string, error) { return json, nil }
}

// paragraphText gera um texto com parágrafos de ~100 runas até o total pedido.
func paragraphText(total int) string {
	line := strings.Repeat("a", 99)
	var b strings.Builder
	for b.Len() < total {
		remaining := total - b.Len()
		if remaining < 100 {
			b.WriteString(strings.Repeat("b", remaining))
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func TestAnalyzeSinglePass(t *testing.T) {
	llm := &stubLLM{respond: always(`{
		"datas_vencimento": [{"descricao": "Parcela 1", "data_iso": "2025-04-05", "texto_origem": "vence dia 5"}],
		"partes": [{"nome": "Acme Ltd", "papel": "Contratante"}],
		"resumo_juridico": "contrato simples"
	}`)}

	rec, err := Analyze(context.Background(), llm, "contrato curto", Options{Temperature: 0.2})
	require.NoError(t, err)

	require.Len(t, llm.calls, 1)
	assert.Contains(t, llm.prompts[0], "contrato curto")
	require.Len(t, rec.DatasVencimento, 1)
	assert.Equal(t, "2025-04-05", *rec.DatasVencimento[0].DataISO)
	require.Len(t, rec.Partes, 1)
	assert.Equal(t, "Acme Ltd", rec.Partes[0].Nome)
	assert.Equal(t, "contrato simples", rec.ResumoJuridico)
}

func TestAnalyzeStrictRetryOnEmpty(t *testing.T) {
	llm := &stubLLM{respond: func(call int, _ string) (string, error) {
		if call == 0 {
			return "desculpe, não consegui gerar o JSON", nil
		}
		return `{"resumo_juridico": "segunda tentativa"}`, nil
	}}

	rec, err := Analyze(context.Background(), llm, "contrato", Options{Temperature: 0.2})
	require.NoError(t, err)
	require.Len(t, llm.calls, 2)

	// retry estrito: JSON only, temperatura reduzida e nunca negativa
	assert.True(t, llm.calls[1].JSONOnly)
	assert.InDelta(t, 0.1, llm.calls[1].Temperature, 1e-6)
	assert.Contains(t, llm.prompts[1], "começando com '{'")
	assert.Equal(t, "segunda tentativa", rec.ResumoJuridico)
}

func TestAnalyzeStrictRetryClampsTemperature(t *testing.T) {
	llm := &stubLLM{respond: func(call int, _ string) (string, error) {
		return "nada de json", nil
	}}

	rec, err := Analyze(context.Background(), llm, "contrato", Options{Temperature: 0.05})
	require.NoError(t, err)
	require.Len(t, llm.calls, 2)
	assert.GreaterOrEqual(t, float64(llm.calls[1].Temperature), 0.0)

	// vazio mesmo após retry: devolve registro vazio, nunca erro
	assert.NotNil(t, rec.DatasVencimento)
	assert.Empty(t, rec.DatasVencimento)
	assert.Equal(t, "", rec.ResumoJuridico)
}

func TestAnalyzeThresholdBoundary(t *testing.T) {
	nonEmpty := always(`{"resumo_juridico": "ok"}`)

	atThreshold := paragraphText(12000)
	require.Equal(t, 12000, len([]rune(atThreshold)))

	llm := &stubLLM{respond: nonEmpty}
	_, err := Analyze(context.Background(), llm, atThreshold, Options{})
	require.NoError(t, err)
	assert.Len(t, llm.calls, 1, "exatamente no limiar: passada única")

	llm = &stubLLM{respond: nonEmpty}
	_, err = Analyze(context.Background(), llm, atThreshold+"x", Options{})
	require.NoError(t, err)
	assert.Greater(t, len(llm.calls), 1, "um caractere acima: modo chunked")
}

func TestAnalyzeChunkedRespectsMaxChunks(t *testing.T) {
	llm := &stubLLM{respond: always(`{"resumo_juridico": "ok"}`)}

	_, err := Analyze(context.Background(), llm, paragraphText(30000), Options{MaxChunks: 4})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(llm.calls), 4)
}

func TestAnalyzeChunkedProgressHook(t *testing.T) {
	llm := &stubLLM{respond: always(`{"resumo_juridico": "ok"}`)}

	var seen [][2]int
	_, err := Analyze(context.Background(), llm, paragraphText(15000), Options{
		MaxChunks: 20,
		Progress: func(done, total int) {
			seen = append(seen, [2]int{done, total})
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, seen)

	total := seen[0][1]
	for i, s := range seen {
		assert.Equal(t, i+1, s[0])
		assert.Equal(t, total, s[1])
	}
	assert.Equal(t, total, seen[len(seen)-1][0])
}

func TestAnalyzeProgressHookPanicIsSwallowed(t *testing.T) {
	llm := &stubLLM{respond: always(`{"resumo_juridico": "ok"}`)}

	_, err := Analyze(context.Background(), llm, paragraphText(15000), Options{
		Progress: func(done, total int) { panic("hook quebrado") },
	})
	assert.NoError(t, err)
}

func TestAnalyzeGatewayErrorAborts(t *testing.T) {
	provedor := errors.New("connection refused")
	llm := &stubLLM{respond: func(call int, _ string) (string, error) {
		if call == 2 {
			return "", provedor
		}
		return `{"resumo_juridico": "ok"}`, nil
	}}

	_, err := Analyze(context.Background(), llm, paragraphText(15000), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, provedor)
}

func TestAnalyzeEndToEndChunkedContract(t *testing.T) {
	// contrato sintético de ~20k runas com achados conhecidos espalhados
	doc := paragraphText(20000)

	llm := &stubLLM{respond: func(call int, _ string) (string, error) {
		switch call {
		case 0:
			return `{
				"datas_vencimento": [
					{"descricao": "Parcela 1", "data_iso": "2025-04-05", "texto_origem": "vencimento em 05/04/2025"},
					{"descricao": "Parcela 2", "data_iso": "2025-05-05", "texto_origem": "vencimento em 05/05/2025"}
				],
				"resumo_juridico": "parte um"
			}`, nil
		case 1:
			return `{
				"datas_vencimento": [
					{"descricao": "Parcela 1", "data_iso": "2025-04-05", "texto_origem": "vencimento em 05/04/2025"}
				],
				"valores_multas": [
					{"tipo": "multa por atraso", "percentual": 2, "texto_origem": "multa de R$ 1.500,00 por atraso"}
				],
				"resumo_juridico": "parte dois"
			}`, nil
		default:
			return fmt.Sprintf(`{"resumo_juridico": "parte %d"}`, call+1), nil
		}
	}}

	rec, err := Analyze(context.Background(), llm, doc, Options{MaxChunks: 50})
	require.NoError(t, err)

	// data repetida entre chunks aparece uma vez só
	require.Len(t, rec.DatasVencimento, 2)
	assert.Equal(t, "2025-04-05", *rec.DatasVencimento[0].DataISO)
	assert.Equal(t, "2025-05-05", *rec.DatasVencimento[1].DataISO)

	// multa chegou e saiu em formato canônico
	require.Len(t, rec.ValoresMultas, 1)
	assert.Equal(t, "R$ 1.500,00", rec.ValoresMultas[0].ValorMonetario)
	assert.Equal(t, "BRL", rec.ValoresMultas[0].Moeda)

	// resumos concatenados na ordem de processamento
	assert.True(t, strings.HasPrefix(rec.ResumoJuridico, "parte um\n\nparte dois"))
}

func TestParseRecordRecovery(t *testing.T) {
	valid := `{"resumo_juridico": "ok"}`

	assert.Equal(t, "ok", parseRecord(valid).ResumoJuridico)
	assert.Equal(t, "ok", parseRecord("```json\n"+valid+"\n```").ResumoJuridico)
	assert.Equal(t, "ok", parseRecord("Segue o resultado:\n"+valid+"\nEspero ter ajudado!").ResumoJuridico)

	// lixo completo degrada para registro vazio, nunca erro
	assert.True(t, IsEmpty(parseRecord("sem json nenhum")))
	assert.True(t, IsEmpty(parseRecord("{quebrado")))
	assert.True(t, IsEmpty(parseRecord("")))
}
