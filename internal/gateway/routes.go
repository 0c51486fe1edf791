package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Michaelmpofo/helpmate-lite/internal/gateway/middleware"
	auth_http "github.com/Michaelmpofo/helpmate-lite/internal/modules/auth/interfaces/http"
	board_http "github.com/Michaelmpofo/helpmate-lite/internal/modules/board/interfaces/http"
	chat_http "github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/interfaces/http"
	notification_http "github.com/Michaelmpofo/helpmate-lite/internal/modules/notification/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler         *auth_http.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleWare
	RequestHandler      *board_http.RequestHandler
	NotificationHandler *notification_http.NotificationHandler
	ChatHandler         *chat_http.ChatHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Auth Routes
	mux.HandleFunc("POST /register", config.AuthHandler.Register)
	mux.HandleFunc("POST /login", config.AuthHandler.Login)
	mux.Handle("GET /me", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.AuthHandler.Me)))

	// Help Request Routes
	mux.Handle("GET /requests", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.List)))
	mux.Handle("POST /requests", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.Create)))
	mux.Handle("GET /requests/mine", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.Mine)))
	mux.Handle("GET /requests/offered", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.Offered)))
	mux.Handle("GET /requests/{id}", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.Get)))
	mux.Handle("DELETE /requests/{id}", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.Cancel)))
	mux.Handle("POST /requests/{id}/offer", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.OfferHelp)))
	mux.Handle("POST /requests/{id}/accept", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.AcceptOffer)))
	mux.Handle("POST /requests/{id}/deny", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.DenyOffer)))
	mux.Handle("POST /requests/{id}/cancel-offer", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.CancelHelp)))
	mux.Handle("POST /requests/{id}/complete", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.RequestHandler.Complete)))

	// Chat Routes
	mux.Handle("GET /requests/{id}/chat", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ChatHandler.History)))
	mux.Handle("POST /requests/{id}/chat", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ChatHandler.Send)))

	// Notification Routes
	mux.Handle("GET /notifications", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.ListNotifications)))
	mux.Handle("PATCH /notifications/{id}/read", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.MarkAsRead)))
	mux.Handle("PATCH /notifications/read-all", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.MarkAllAsRead)))
	mux.Handle("GET /notifications/unread-count", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.UnreadCount)))
	mux.Handle("GET /ws", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.Subscribe)))

	return mux
}
