package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Michaelmpofo/helpmate-lite/internal/gateway"
	"github.com/Michaelmpofo/helpmate-lite/internal/gateway/middleware"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/auth"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/notification"
	notifapp "github.com/Michaelmpofo/helpmate-lite/internal/modules/notification/application"
	"github.com/Michaelmpofo/helpmate-lite/internal/shared/infrastructure/config"
	"github.com/Michaelmpofo/helpmate-lite/internal/shared/infrastructure/database"
	"github.com/Michaelmpofo/helpmate-lite/pkg/migration"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	log.Println("Database Connected Successfully!")

	migrationLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := migration.AutoMigrate(cfg.Database.DSN(), cfg.Server.MigrationsPath, migrationLogger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis Connected Successfully!")

	// Modules
	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry)
	notificationModule := notification.NewModule(db)
	boardModule := board.NewModule(db, notificationModule.Service())
	chatModule := chat.NewModule(redisClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := boardModule.Service().SeedDefaults(ctx); err != nil {
		log.Printf("Seeding default requests failed: %v", err)
	}

	scanner := notifapp.NewDeadlineScanner(
		boardModule.Repository(),
		notificationModule.Service(),
		cfg.Scanner.Interval,
		cfg.Scanner.ReminderWindow,
	)
	go scanner.Run(ctx)

	// Routes
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:         authModule.HTTPHandler(),
		AuthMiddleware:      authMiddleware,
		RequestHandler:      boardModule.HTTPHandler(),
		NotificationHandler: notificationModule.HTTPHandler(),
		ChatHandler:         chatModule.HTTPHandler(),
	})

	handler := middleware.CORSMiddleware(middleware.PrometheusMiddleware(mux), cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(func() {
		cancel()
		notificationModule.Hub().Stop()
	}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
