package domain

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message content is empty")

// Message is one line of a request-scoped conversation. Timestamp is unix
// milliseconds to keep ordering stable across clients.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Timestamp  int64     `json:"timestamp"`
	Avatar     string    `json:"avatar,omitempty"`
}

// ConversationKey names the transcript for one request between two users.
// The participant ids are sorted so both sides derive the same key.
func ConversationKey(requestID int64, a, b uuid.UUID) string {
	lo, hi := a.String(), b.String()
	if strings.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	return "chat:" + strconv.FormatInt(requestID, 10) + ":" + lo + ":" + hi
}

// TranscriptRepository is an append-only log per conversation key.
type TranscriptRepository interface {
	Append(ctx context.Context, key string, msg Message) error
	List(ctx context.Context, key string) ([]Message, error)
}
