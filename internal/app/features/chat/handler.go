// internal/app/features/chat/handler.go

// Package chat is the simulated assistant. Replies are canned and paced by
// a configurable delay; transcripts are held in memory per user and start
// with a greeting, so a fresh session always has one assistant message.
package chat

import (
	"sync"
	"time"

	"github.com/dalemusser/reviewhub/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	greeting = "Hello! I'm your AI assistant. How can I help you today?"
	reply    = "I understand your request. This is a simulated response from the AI assistant. In a real implementation, this would connect to your AI service."
)

// Handler holds per-user transcripts and produces simulated replies.
type Handler struct {
	Delay time.Duration // simulated thinking delay (0 in tests)
	Log   *zap.Logger

	mu          sync.Mutex
	transcripts map[string][]models.ChatMessage // keyed by user id
}

// NewHandler constructs a chat handler.
func NewHandler(delay time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		Delay:       delay,
		Log:         logger,
		transcripts: make(map[string][]models.ChatMessage),
	}
}

// transcriptLocked returns the user's transcript, seeding the greeting on
// first access. Callers must hold mu.
func (h *Handler) transcriptLocked(userID string) []models.ChatMessage {
	if _, ok := h.transcripts[userID]; !ok {
		h.transcripts[userID] = []models.ChatMessage{{
			ID:        uuid.NewString(),
			Text:      greeting,
			Sender:    models.SenderAssistant,
			Timestamp: time.Now().UTC(),
		}}
	}
	return h.transcripts[userID]
}

// appendExchange records the user's message and the assistant's reply and
// returns the reply.
func (h *Handler) appendExchange(userID, text string) models.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	transcript := h.transcriptLocked(userID)
	now := time.Now().UTC()
	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: now,
	}
	botMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      reply,
		Sender:    models.SenderAssistant,
		Timestamp: now,
	}
	h.transcripts[userID] = append(transcript, userMsg, botMsg)
	return botMsg
}

// history returns a copy of the user's transcript.
func (h *Handler) history(userID string) []models.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	transcript := h.transcriptLocked(userID)
	out := make([]models.ChatMessage, len(transcript))
	copy(out, transcript)
	return out
}
