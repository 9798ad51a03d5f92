package agent

import (
	"context"

	"altitude/models"

	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// AssistantService is the chat surface exposed to the HTTP layer.
type AssistantService interface {
	Chat(ctx context.Context, req models.ChatRequest) *models.ChatResponse
}

// DefaultAssistantService builds a fresh Agent per request. Stateless by
// design: the caller resends the full conversation history each turn.
type DefaultAssistantService struct {
	Model   Model
	Gateway BookingGateway
	Docs    DocumentSearcher
	Logger  *zap.Logger
}

// Chat runs one conversation turn and maps the agent's structured
// outcome onto the wire response.
func (s *DefaultAssistantService) Chat(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	a := New(s.Model, s.Gateway, s.Docs, s.Logger)
	result := a.Run(ctx, req.Message, req.ConversationHistory)

	resp := &models.ChatResponse{Response: result.Reply}
	if result.Booking != nil {
		resp.BookingCreated = true
		resp.CheckoutURL = result.Booking.CheckoutURL
	}
	return resp
}

// NewXAIModel connects to the xAI API (OpenAI-compatible) as the
// assistant's language model.
func NewXAIModel(apiKey, baseURL, modelName string) (Model, error) {
	return openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
		openai.WithBaseURL(baseURL),
	)
}
