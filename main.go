package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fvictoor/analisador-contrato/api/handler"
	"github.com/fvictoor/analisador-contrato/api/router"
	"github.com/fvictoor/analisador-contrato/job"
	"github.com/fvictoor/analisador-contrato/logic/chat"
	"github.com/fvictoor/analisador-contrato/service"
	"github.com/fvictoor/analisador-contrato/storage/postgres"
	"github.com/fvictoor/analisador-contrato/vars"
)

func main() {
	ctx := context.Background()

	// 1. DB
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		vars.PGHost, vars.PGUser, vars.PGPwd, vars.PGDB, vars.PGPort)
	db, err := postgres.InitDB(dsn)
	if err != nil {
		panic(err)
	}
	repo := postgres.NewAnaliseRepo(db)

	// purge diário de análises antigas
	job.StartCronJob(repo)

	// 2. LLM: Groq por padrão, Ollama para rodar local
	var gateway *chat.Gateway
	switch vars.LLMProvider {
	case "ollama":
		gateway = chat.NewGateway(chat.CreateOllamaChatModel(ctx, vars.OllamaPath, vars.Qwen3B))
	default:
		if vars.GroqAPIKey == "" {
			log.Println("GROQ_API_KEY ausente; chamadas de análise vão falhar com erro de credencial")
			gateway = chat.NewGateway(nil)
		} else {
			gateway = chat.NewGateway(chat.CreateGroqChatModel(ctx, vars.GroqBaseURL, vars.GroqAPIKey, vars.Llama8B))
		}
	}

	// 3. Services + Handler
	analysisSvc := service.NewAnalysisService(repo, gateway)
	qaSvc := service.NewQAService(repo, gateway)
	contractHandler := handler.NewContractHandler(analysisSvc, qaSvc)

	// 4. Web Server
	r := gin.Default()
	router.RegisterRoutes(r, contractHandler)

	log.Println("Server running on", vars.HTTPAddr)
	if err := r.Run(vars.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
