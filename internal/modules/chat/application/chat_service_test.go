package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/domain"
)

type transcriptRepoMock struct {
	appended map[string][]domain.Message
}

func newTranscriptRepoMock() *transcriptRepoMock {
	return &transcriptRepoMock{appended: make(map[string][]domain.Message)}
}

func (m *transcriptRepoMock) Append(_ context.Context, key string, msg domain.Message) error {
	m.appended[key] = append(m.appended[key], msg)
	return nil
}

func (m *transcriptRepoMock) List(_ context.Context, key string) ([]domain.Message, error) {
	return m.appended[key], nil
}

func TestChatService_Send(t *testing.T) {
	repo := newTranscriptRepoMock()
	svc := NewChatService(repo)

	senderID := uuid.New()
	peerID := uuid.New()

	msg, err := svc.Send(context.Background(), 3, senderID, "Alice", peerID, "  hello there  ", "http://avatar")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, senderID, msg.SenderID)
	assert.Equal(t, "Alice", msg.SenderName)
	assert.Equal(t, "hello there", msg.Content)
	assert.NotZero(t, msg.Timestamp)

	key := domain.ConversationKey(3, senderID, peerID)
	require.Len(t, repo.appended[key], 1)
}

func TestChatService_SendRejectsEmptyContent(t *testing.T) {
	svc := NewChatService(newTranscriptRepoMock())

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(context.Background(), 1, uuid.New(), "A", uuid.New(), content, "")
		assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	}
}

func TestChatService_HistorySharedBetweenParticipants(t *testing.T) {
	repo := newTranscriptRepoMock()
	svc := NewChatService(repo)

	requesterID := uuid.New()
	helperID := uuid.New()

	_, err := svc.Send(context.Background(), 5, requesterID, "Requester", helperID, "hi", "")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), 5, helperID, "Helper", requesterID, "hey", "")
	require.NoError(t, err)

	// Either side loads the same transcript, in send order.
	fromRequester, err := svc.History(context.Background(), 5, requesterID, helperID)
	require.NoError(t, err)
	fromHelper, err := svc.History(context.Background(), 5, helperID, requesterID)
	require.NoError(t, err)

	require.Len(t, fromRequester, 2)
	assert.Equal(t, fromRequester, fromHelper)
	assert.Equal(t, "hi", fromRequester[0].Content)
	assert.Equal(t, "hey", fromRequester[1].Content)
}
