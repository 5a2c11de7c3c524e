package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/fvictoor/analisador-contrato/logic/chat"
	"github.com/fvictoor/analisador-contrato/logic/retrieval"
	"github.com/fvictoor/analisador-contrato/types"
	"github.com/fvictoor/analisador-contrato/vars"
)

// QAService responde perguntas sobre um contrato já analisado usando os
// trechos mais relevantes como contexto.
type QAService struct {
	repo AnalysisStore
	llm  chat.Completer
}

func NewQAService(repo AnalysisStore, llm chat.Completer) *QAService {
	return &QAService{repo: repo, llm: llm}
}

func (s *QAService) Ask(ctx context.Context, docID, pergunta string, p chat.Params) (*types.AskResponse, error) {
	a, err := s.repo.GetByDocID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("análise %s não encontrada: %w", docID, err)
	}

	trechos := retrieval.TopK(pergunta, a.RawText, vars.QATopK)
	contexto := strings.Join(trechos, "\n\n")

	msgs := []*schema.Message{
		schema.SystemMessage(vars.QASystemPrompt),
		schema.UserMessage(fmt.Sprintf(
			"Pergunta: %s\n\nTrechos relevantes selecionados:\n%s\n\n"+
				"Se necessário, considere o restante do contrato, mas priorize os trechos.",
			pergunta, contexto)),
	}

	resposta, err := s.llm.Complete(ctx, msgs, p)
	if err != nil {
		return nil, err
	}
	return &types.AskResponse{Resposta: resposta, Trechos: trechos}, nil
}
