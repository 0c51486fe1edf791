package chat

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/application"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/infrastructure/persistence/redis"
	chat_http "github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/interfaces/http"
)

type Module struct {
	service *application.ChatService
	handler *chat_http.ChatHandler
}

func NewModule(client *goredis.Client) *Module {
	repo := redis.NewRedisTranscriptRepository(client)
	service := application.NewChatService(repo)
	handler := chat_http.NewChatHandler(service)

	return &Module{
		service: service,
		handler: handler,
	}
}

func (m *Module) HTTPHandler() *chat_http.ChatHandler {
	return m.handler
}

func (m *Module) Service() *application.ChatService {
	return m.service
}
