package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fvictoor/analisador-contrato/api/handler"
)

func RegisterRoutes(r *gin.Engine, contractH *handler.ContractHandler) {
	api := r.Group("/api/v1")
	{
		contrato := api.Group("/contrato")
		{
			contrato.POST("/analisar", contractH.Analyze)
			contrato.GET("/:doc_id", contractH.Get)
			contrato.POST("/perguntar", contractH.Ask)
			contrato.GET("/:doc_id/agenda.ics", contractH.CalendarICS)
			contrato.GET("/:doc_id/agenda/links", contractH.CalendarLinks)
		}
	}
}
