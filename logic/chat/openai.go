package chat

import (
	"context"
	"log"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// CreateGroqChatModel cria um chat model apontando para a API da Groq,
// que expõe uma superfície compatível com OpenAI.
func CreateGroqChatModel(ctx context.Context, baseURL, apiKey, defaultModel string) model.ToolCallingChatModel {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   defaultModel,
	})
	if err != nil {
		log.Fatalf("create groq chat model failed: %v", err)
	}
	return chatModel
}
