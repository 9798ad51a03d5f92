// Package agent runs the tool-calling booking assistant. One Agent is
// built per chat request from caller-supplied history; nothing persists
// between turns.
package agent

import (
	"context"
	"strings"

	"altitude/models"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// maxToolRounds bounds the propose-execute loop within one turn. The
// model evaluates tool calls sequentially: it proposes, the agent
// executes, and the results are fed back for the next proposal.
const maxToolRounds = 8

// apologyReply is the fixed degraded response used when the model call
// fails or returns an unrecognized shape. The transport layer never
// sees a raw model error.
const apologyReply = "I'm sorry, I ran into a problem processing that request. Please try again."

// Model is the slice of the language model the agent needs. The
// langchaingo llms.Model satisfies it; tests script their own.
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// BookingGateway is the reservation-provider surface the tools call.
// Satisfied by *roller.Client.
type BookingGateway interface {
	CheckAvailability(ctx context.Context, date, packageName string, numJumpers int) (*models.Availability, error)
	CreateBooking(ctx context.Context, request models.BookingRequest) (*models.BookingResult, error)
}

// DocumentSearcher backs the optional search_documents tool.
// Satisfied by *documents.Store.
type DocumentSearcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Agent orchestrates one multi-turn dialogue request.
type Agent struct {
	model   Model
	gateway BookingGateway
	docs    DocumentSearcher // nil disables the document tool
	logger  *zap.Logger

	outcome *models.BookingOutcome
}

// Result is the agent's answer for one chat turn.
type Result struct {
	Reply string
	// Booking is set when the create-booking tool ran successfully
	// during this turn.
	Booking *models.BookingOutcome
}

// New builds an agent for a single request. docs may be nil.
func New(model Model, gateway BookingGateway, docs DocumentSearcher, logger *zap.Logger) *Agent {
	return &Agent{
		model:   model,
		gateway: gateway,
		docs:    docs,
		logger:  logger,
	}
}

// Run executes one chat turn: rebuild the conversation from history,
// let the model call zero or more tools, and return the final reply.
func (a *Agent) Run(ctx context.Context, message string, history []models.ChatMessage) *Result {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	tools := a.toolDefinitions()

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.model.GenerateContent(ctx, messages, llms.WithTools(tools))
		if err != nil {
			a.logger.Error("model invocation failed", zap.Error(err))
			return &Result{Reply: apologyReply, Booking: a.outcome}
		}
		if resp == nil || len(resp.Choices) == 0 {
			a.logger.Error("model returned no choices")
			return &Result{Reply: apologyReply, Booking: a.outcome}
		}

		choice := resp.Choices[0]
		if len(choice.ToolCalls) == 0 {
			reply := strings.TrimSpace(choice.Content)
			if reply == "" {
				reply = apologyReply
			}
			return &Result{Reply: reply, Booking: a.outcome}
		}

		// Record the assistant's tool-call turn, then execute each call
		// in order and feed the results back.
		assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		for _, call := range choice.ToolCalls {
			assistant.Parts = append(assistant.Parts, call)
		}
		messages = append(messages, assistant)

		for _, call := range choice.ToolCalls {
			name := ""
			if call.FunctionCall != nil {
				name = call.FunctionCall.Name
			}
			content := a.dispatch(ctx, call)
			a.logger.Debug("tool executed", zap.String("tool", name))
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: call.ID,
					Name:       name,
					Content:    content,
				}},
			})
		}
	}

	a.logger.Warn("tool round limit reached without a final reply")
	return &Result{Reply: apologyReply, Booking: a.outcome}
}
