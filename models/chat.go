package models

// ChatMessage is one turn of the conversation. The server is stateless:
// callers resend the full history on every request.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /chat.
type ChatRequest struct {
	Message             string        `json:"message" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response       string `json:"response"`
	BookingCreated bool   `json:"booking_created"`
	CheckoutURL    string `json:"checkout_url,omitempty"`
}
