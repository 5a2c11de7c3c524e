package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fvictoor/analisador-contrato/api/response"
	"github.com/fvictoor/analisador-contrato/logic/analyze"
	"github.com/fvictoor/analisador-contrato/logic/calendar"
	"github.com/fvictoor/analisador-contrato/logic/chat"
	"github.com/fvictoor/analisador-contrato/service"
	"github.com/fvictoor/analisador-contrato/types"
	"github.com/fvictoor/analisador-contrato/vars"
)

type ContractHandler struct {
	analysisSvc *service.AnalysisService
	qaSvc       *service.QAService
}

func NewContractHandler(analysisSvc *service.AnalysisService, qaSvc *service.QAService) *ContractHandler {
	return &ContractHandler{
		analysisSvc: analysisSvc,
		qaSvc:       qaSvc,
	}
}

// Analyze recebe o contrato via multipart e devolve o registro estruturado.
// Parâmetros de geração opcionais vêm como campos de formulário.
func (h *ContractHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, "arquivo ausente; envie o contrato no campo 'file'")
		return
	}
	fmt.Printf(">>> [API] análise solicitada: %s (%d bytes)\n", fileHeader.Filename, fileHeader.Size)

	// Sem campo 'model' o gateway percorre a lista de fallback.
	opts := analyze.Options{
		Model:       c.PostForm("model"),
		Temperature: parseFloat(c.PostForm("temperature"), vars.DefaultTemperature),
		MaxTokens:   parseInt(c.PostForm("max_tokens"), vars.DefaultMaxOutTokens),
		MaxChunks:   parseInt(c.PostForm("max_chunks"), vars.DefaultMaxChunks),
	}

	result, err := h.analysisSvc.AnalyzeUpload(c.Request.Context(), fileHeader, opts)
	if err != nil {
		if errors.Is(err, chat.ErrNoAPIKey) {
			response.Fail(c, "credencial de LLM ausente; configure GROQ_API_KEY")
			return
		}
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, result)
}

// Get devolve uma análise persistida.
func (h *ContractHandler) Get(c *gin.Context) {
	rec, meta, err := h.analysisSvc.Get(c.Request.Context(), c.Param("doc_id"))
	if err != nil {
		response.Fail(c, "análise não encontrada")
		return
	}
	response.Success(c, gin.H{
		"doc_id":    meta.DocID,
		"file_name": meta.FileName,
		"criada_em": meta.CreatedAt,
		"resultado": rec,
	})
}

// Ask responde uma pergunta sobre um contrato já analisado.
func (h *ContractHandler) Ask(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "parâmetros inválidos: doc_id e pergunta são obrigatórios")
		return
	}

	answer, err := h.qaSvc.Ask(c.Request.Context(), req.DocID, req.Pergunta, chat.Params{
		Model:       c.Query("model"),
		Temperature: vars.DefaultTemperature,
		MaxTokens:   vars.DefaultMaxOutTokens,
	})
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, answer)
}

// CalendarICS entrega o arquivo .ics com as datas de vencimento da análise.
func (h *ContractHandler) CalendarICS(c *gin.Context) {
	rec, _, err := h.analysisSvc.Get(c.Request.Context(), c.Param("doc_id"))
	if err != nil {
		response.Fail(c, "análise não encontrada")
		return
	}
	ics := calendar.ICS(rec.DatasVencimento,
		c.DefaultQuery("titulo", calendar.DefaultTitle),
		c.DefaultQuery("detalhes", "Gerado pelo Analisador de Contratos"))

	c.Header("Content-Disposition", `attachment; filename="vencimentos_contrato.ics"`)
	c.Data(200, "text/calendar", []byte(ics))
}

// CalendarLinks devolve os links Google/Outlook por data de vencimento.
func (h *ContractHandler) CalendarLinks(c *gin.Context) {
	rec, _, err := h.analysisSvc.Get(c.Request.Context(), c.Param("doc_id"))
	if err != nil {
		response.Fail(c, "análise não encontrada")
		return
	}
	links := calendar.Links(rec.DatasVencimento,
		c.DefaultQuery("titulo", calendar.DefaultTitle),
		c.DefaultQuery("detalhes", ""))
	response.Success(c, links)
}

func parseFloat(s string, fallback float32) float32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v < 0 || v > 1 {
		return fallback
	}
	return float32(v)
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
