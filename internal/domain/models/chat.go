// internal/domain/models/chat.go
package models

import "time"

// Chat message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage is one entry in a user's in-memory chat transcript.
// Transcripts are never persisted; they live only for the process lifetime.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // user | assistant
	Timestamp time.Time `json:"timestamp"`
}
