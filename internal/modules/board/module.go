package board

import (
	"github.com/jmoiron/sqlx"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/application"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/domain"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/infrastructure/persistence/postgres"
	board_http "github.com/Michaelmpofo/helpmate-lite/internal/modules/board/interfaces/http"
)

type Module struct {
	repo    domain.RequestRepository
	service *application.BoardService
	handler *board_http.RequestHandler
}

func NewModule(db *sqlx.DB, notifs application.NotificationPublisher) *Module {
	repo := postgres.NewPgRequestRepository(db)
	service := application.NewBoardService(repo, notifs)
	handler := board_http.NewRequestHandler(service)

	return &Module{
		repo:    repo,
		service: service,
		handler: handler,
	}
}

func (m *Module) HTTPHandler() *board_http.RequestHandler {
	return m.handler
}

func (m *Module) Service() *application.BoardService {
	return m.service
}

// Repository exposes the request store for the deadline scanner.
func (m *Module) Repository() domain.RequestRepository {
	return m.repo
}
