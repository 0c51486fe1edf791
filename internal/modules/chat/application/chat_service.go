package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/domain"
)

// ChatService keeps per-request transcripts between a requester and a
// helper. Conversations are keyed by request id plus the two participant
// ids, so either side can load the same history.
type ChatService struct {
	repo domain.TranscriptRepository
}

func NewChatService(repo domain.TranscriptRepository) *ChatService {
	return &ChatService{repo: repo}
}

// Send appends one message to the conversation between sender and peer.
func (s *ChatService) Send(ctx context.Context, requestID int64, senderID uuid.UUID, senderName string, peerID uuid.UUID, content, avatar string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	msg := domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
		Timestamp:  time.Now().UnixMilli(),
		Avatar:     avatar,
	}
	key := domain.ConversationKey(requestID, senderID, peerID)
	if err := s.repo.Append(ctx, key, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// History returns the full transcript, oldest first.
func (s *ChatService) History(ctx context.Context, requestID int64, userID, peerID uuid.UUID) ([]domain.Message, error) {
	key := domain.ConversationKey(requestID, userID, peerID)
	return s.repo.List(ctx, key)
}
