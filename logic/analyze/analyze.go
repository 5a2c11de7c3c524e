// Package analyze implementa o motor de extração: modo de passada única para
// contratos curtos, modo chunked com agregação deduplicada para contratos
// longos, e o parse defensivo do JSON devolvido pelo modelo.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/eino/schema"

	"github.com/fvictoor/analisador-contrato/logic/chat"
	"github.com/fvictoor/analisador-contrato/logic/normalize"
	"github.com/fvictoor/analisador-contrato/logic/retrieval"
	"github.com/fvictoor/analisador-contrato/types"
	"github.com/fvictoor/analisador-contrato/vars"
)

// ProgressFunc é chamada após cada chunk concluído. Pânico dentro do hook é
// engolido: ele existe só para alimentar barra de progresso.
type ProgressFunc func(done, total int)

type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
	MaxChunks   int
	Progress    ProgressFunc
}

func (o *Options) defaults() {
	if o.MaxTokens <= 0 {
		o.MaxTokens = vars.DefaultMaxOutTokens
	}
	if o.MaxChunks <= 0 {
		o.MaxChunks = vars.DefaultMaxChunks
	}
}

// Analyze é o ponto de entrada do core: recebe o texto integral do contrato e
// devolve o registro estruturado já validado e normalizado. Erros de provedor
// propagam; JSON ruim nunca propaga, degrada para registro vazio.
func Analyze(ctx context.Context, llm chat.Completer, text string, opts Options) (*types.ContractRecord, error) {
	opts.defaults()

	var rec *types.ContractRecord
	if utf8.RuneCountInString(text) <= vars.ChunkedThreshold {
		one, err := extractWithRetry(ctx, llm, text, opts)
		if err != nil {
			return nil, err
		}
		rec = EnsureSchema(one)
		// Limpeza textual do resumo só faz sentido na passada única: no modo
		// chunked o resumo é uma concatenação de parciais.
		rec.ResumoJuridico = normalize.Summary(rec.ResumoJuridico)
	} else {
		agg, err := analyzeChunked(ctx, llm, text, opts)
		if err != nil {
			return nil, err
		}
		rec = agg
	}

	return normalize.Record(EnsureSchema(rec)), nil
}

func analyzeChunked(ctx context.Context, llm chat.Completer, text string, opts Options) (*types.ContractRecord, error) {
	chunks := retrieval.SplitParagraphs(text, vars.ChunkMaxChars)
	if len(chunks) > opts.MaxChunks {
		// Chunks demais: seleciona os mais relevantes para a extração.
		selected := retrieval.TopK(vars.ChunkSelectionQuery, text, opts.MaxChunks)
		if len(selected) > 0 {
			chunks = selected
		} else {
			chunks = chunks[:opts.MaxChunks]
		}
		fmt.Printf(">>> [Analyze] contrato longo, %d chunks selecionados\n", len(chunks))
	}

	agg := newAggregator()
	total := len(chunks)
	for i, chunk := range chunks {
		rec, err := extractWithRetry(ctx, llm, chunk, opts)
		if err != nil {
			return nil, fmt.Errorf("extração do chunk %d/%d falhou: %w", i+1, total, err)
		}
		agg.add(EnsureSchema(rec))
		reportProgress(opts.Progress, i+1, total)
	}
	return agg.result(vars.SummaryMaxChars), nil
}

// extractWithRetry roda a extração sobre um texto (contrato inteiro ou chunk)
// e, se o resultado voltar vazio, repete uma vez com prompt estrito e
// temperatura reduzida.
func extractWithRetry(ctx context.Context, llm chat.Completer, text string, opts Options) (*types.ContractRecord, error) {
	out, err := llm.Complete(ctx, buildMessages(text, false), chat.Params{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	rec := parseRecord(out)
	if !IsEmpty(rec) {
		return rec, nil
	}

	temp := opts.Temperature - 0.1
	if temp < 0 {
		temp = 0
	}
	out, err = llm.Complete(ctx, buildMessages(text, true), chat.Params{
		Model:       opts.Model,
		Temperature: temp,
		MaxTokens:   opts.MaxTokens,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, err
	}
	return parseRecord(out), nil
}

func buildMessages(text string, strict bool) []*schema.Message {
	system := vars.ExtractionSystemPrompt
	user := strings.ReplaceAll(vars.ExtractionUserPrompt, "{{.Contrato}}", text)
	if strict {
		system += vars.StrictSystemSuffix
		user += vars.StrictUserSuffix
	}
	return []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}
}

// parseRecord nunca devolve erro: tira cercas de markdown, tenta o parse
// direto, depois recupera o trecho entre a primeira '{' e a última '}', e por
// fim degrada para registro vazio.
func parseRecord(raw string) *types.ContractRecord {
	cleaned := cleanOutput(raw)

	var rec types.ContractRecord
	if err := json.Unmarshal([]byte(cleaned), &rec); err == nil {
		return &rec
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		rec = types.ContractRecord{}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &rec); err == nil {
			return &rec
		}
	}
	return &types.ContractRecord{}
}

func cleanOutput(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func reportProgress(hook ProgressFunc, done, total int) {
	if hook == nil {
		return
	}
	defer func() { _ = recover() }()
	hook(done, total)
}
