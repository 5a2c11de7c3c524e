package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/fvictoor/analisador-contrato/logic/analyze"
	"github.com/fvictoor/analisador-contrato/logic/chat"
	"github.com/fvictoor/analisador-contrato/logic/ingestion"
	"github.com/fvictoor/analisador-contrato/storage/postgres"
	"github.com/fvictoor/analisador-contrato/types"
)

// AnalysisStore é o que os serviços precisam da camada de persistência.
type AnalysisStore interface {
	Create(ctx context.Context, a *postgres.Analise) error
	GetByDocID(ctx context.Context, docID string) (*postgres.Analise, error)
	GetByTextHash(ctx context.Context, hash string) (*postgres.Analise, error)
}

// AnalysisService liga extração de texto, motor de análise e persistência.
type AnalysisService struct {
	repo AnalysisStore
	llm  chat.Completer
}

func NewAnalysisService(repo AnalysisStore, llm chat.Completer) *AnalysisService {
	return &AnalysisService{repo: repo, llm: llm}
}

// AnalysisResult devolve o registro final junto do identificador persistido.
type AnalysisResult struct {
	DocID  string                `json:"doc_id"`
	Cached bool                  `json:"cached"`
	Record *types.ContractRecord `json:"resultado"`
}

// AnalyzeUpload processa um contrato enviado: extrai o texto, consulta o
// cache por hash de conteúdo e, se preciso, roda a análise completa e salva.
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, fileHeader *multipart.FileHeader, opts analyze.Options) (*AnalysisResult, error) {
	startTime := time.Now()

	text, err := ingestion.ExtractText(ctx, fileHeader)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("não foi possível extrair texto de %s", fileHeader.Filename)
	}
	fmt.Printf(">>> [Perf] extração de texto: %v (%d bytes)\n", time.Since(startTime), len(text))

	sum := md5.Sum([]byte(text))
	hash := hex.EncodeToString(sum[:])
	cached, err := s.repo.GetByTextHash(ctx, hash)
	if err != nil {
		// falha de cache não bloqueia a análise, mas precisa ficar visível
		fmt.Printf(">>> [Cache] consulta por hash falhou: %v; análise segue sem cache\n", err)
	} else if cached != nil {
		var rec types.ContractRecord
		if err := json.Unmarshal([]byte(cached.ResultJSON), &rec); err == nil {
			fmt.Printf(">>> [Cache] análise reaproveitada para %s\n", fileHeader.Filename)
			return &AnalysisResult{DocID: cached.DocID, Cached: true, Record: &rec}, nil
		}
	}

	if opts.Progress == nil {
		opts.Progress = func(done, total int) {
			fmt.Printf(">>> [Analyze] chunk %d/%d concluído\n", done, total)
		}
	}

	llmStart := time.Now()
	rec, err := analyze.Analyze(ctx, s.llm, text, opts)
	if err != nil {
		return nil, err
	}
	fmt.Printf(">>> [Perf] análise LLM: %v\n", time.Since(llmStart))

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("serializar resultado: %w", err)
	}

	docID := uuid.New().String()
	now := time.Now()
	err = s.repo.Create(ctx, &postgres.Analise{
		DocID:      docID,
		FileName:   fileHeader.Filename,
		TextHash:   hash,
		RawText:    text,
		ResultJSON: string(payload),
		RiscoNota:  rec.AnaliseRisco.RiscoGeralNota,
		Modelo:     opts.Model,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("persistir análise: %w", err)
	}

	fmt.Printf(">>> [Perf] análise total de %s: %v\n", fileHeader.Filename, time.Since(startTime))
	return &AnalysisResult{DocID: docID, Record: rec}, nil
}

// Get carrega uma análise persistida e desserializa o registro.
func (s *AnalysisService) Get(ctx context.Context, docID string) (*types.ContractRecord, *postgres.Analise, error) {
	a, err := s.repo.GetByDocID(ctx, docID)
	if err != nil {
		return nil, nil, err
	}
	var rec types.ContractRecord
	if err := json.Unmarshal([]byte(a.ResultJSON), &rec); err != nil {
		return nil, nil, fmt.Errorf("desserializar análise %s: %w", docID, err)
	}
	return &rec, a, nil
}
