package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/fvictoor/analisador-contrato/vars"
)

// ErrNoAPIKey indica que nenhuma credencial de LLM foi configurada.
var ErrNoAPIKey = errors.New("credencial de LLM não configurada (defina GROQ_API_KEY)")

// Params são os parâmetros de geração de uma chamada.
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
	// JSONOnly pede saída JSON estrita. A Groq aceita a instrução via prompt;
	// para Ollama a emulação via prompt é o único caminho, então o Gateway
	// sempre emula.
	JSONOnly bool
}

// Completer é a única dependência que o pipeline de análise tem do LLM.
type Completer interface {
	Complete(ctx context.Context, msgs []*schema.Message, p Params) (string, error)
}

// Generator é o subconjunto de model.ToolCallingChatModel que o Gateway usa.
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

const (
	rateLimitRetries = 3
	backoffStep      = 2 * time.Second
)

// Gateway envolve um chat model com a política de retry/substituição:
// modelo descontinuado vira o sucessor, limite por minuto espera e tenta de
// novo, limite diário cai para um modelo mais barato.
type Gateway struct {
	model Generator
	sleep func(time.Duration) // injetável nos testes
}

func NewGateway(m Generator) *Gateway {
	return &Gateway{model: m, sleep: time.Sleep}
}

func (g *Gateway) Complete(ctx context.Context, msgs []*schema.Message, p Params) (string, error) {
	if g == nil || g.model == nil {
		return "", ErrNoAPIKey
	}
	if p.Model == "" {
		// Chamador não fixou modelo: percorre a lista de fallback.
		return g.CompleteWithFallback(ctx, msgs, p)
	}

	out, err := g.generate(ctx, msgs, p)
	if err == nil {
		return out, nil
	}

	switch {
	case isDecommissioned(err):
		if succ, ok := vars.ModelSuccessors[p.Model]; ok && succ != p.Model {
			p.Model = succ
			return g.generate(ctx, msgs, p)
		}
	case isDailyRateLimit(err):
		if p.Model != vars.CheaperModel {
			p.Model = vars.CheaperModel
			return g.generate(ctx, msgs, p)
		}
	case isMinuteRateLimit(err):
		for attempt := 1; attempt <= rateLimitRetries; attempt++ {
			g.sleep(time.Duration(attempt) * backoffStep)
			out, err = g.generate(ctx, msgs, p)
			if err == nil {
				return out, nil
			}
			if !isMinuteRateLimit(err) {
				break
			}
		}
	}
	return "", err
}

// CompleteWithFallback tenta os modelos de vars.FallbackModels em ordem até
// algum devolver conteúdo utilizável.
func (g *Gateway) CompleteWithFallback(ctx context.Context, msgs []*schema.Message, p Params) (string, error) {
	var lastErr error
	for _, m := range vars.FallbackModels {
		p.Model = m
		out, err := g.Complete(ctx, msgs, p)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = errors.New("nenhum modelo da lista de fallback devolveu conteúdo")
	}
	return "", fmt.Errorf("fallback de modelos esgotado: %w", lastErr)
}

func (g *Gateway) generate(ctx context.Context, msgs []*schema.Message, p Params) (string, error) {
	if p.JSONOnly {
		msgs = append(append([]*schema.Message{}, msgs...),
			schema.SystemMessage("Responda SOMENTE com JSON válido, sem markdown e sem texto fora."))
	}

	var opts []model.Option
	if p.Model != "" {
		opts = append(opts, model.WithModel(p.Model))
	}
	// Temperatura sempre explícita: 0 é valor válido (máximo determinismo) e
	// omiti-la deixaria o provedor cair no default dele.
	opts = append(opts, model.WithTemperature(p.Temperature))
	if p.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(p.MaxTokens))
	}

	resp, err := g.model.Generate(ctx, msgs, opts...)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Classificação de erros de provedor por substring, como a Groq os reporta.

func isDecommissioned(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "decommissioned") || strings.Contains(msg, "model_not_active")
}

func isRateLimit(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "429")
}

func isDailyRateLimit(err error) bool {
	if !isRateLimit(err) {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "day") || strings.Contains(msg, "daily") ||
		strings.Contains(msg, "tpd") || strings.Contains(msg, "rpd")
}

func isMinuteRateLimit(err error) bool {
	// Limite sem janela identificável é tratado como transitório.
	return isRateLimit(err) && !isDailyRateLimit(err)
}
