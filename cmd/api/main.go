package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	"carcare-backend/config"
	_ "carcare-backend/docs"
	bookingHTTP "carcare-backend/internal/booking/delivery/http"
	bookingSQLite "carcare-backend/internal/booking/repository/sqlite"
	bookingUC "carcare-backend/internal/booking/usecase"
	chatHTTP "carcare-backend/internal/chat/delivery/http"
	chatSQLite "carcare-backend/internal/chat/repository/sqlite"
	chatUC "carcare-backend/internal/chat/usecase"
	"carcare-backend/internal/classify"
	contactHTTP "carcare-backend/internal/contact/delivery/http"
	contactSQLite "carcare-backend/internal/contact/repository/sqlite"
	contactUC "carcare-backend/internal/contact/usecase"
	"carcare-backend/internal/httpserver"
	"carcare-backend/pkg/llmprovider"
	"carcare-backend/pkg/log"
)

// @title       CarCare Assist API
// @description Car dealership backend: booking and contact submissions plus an LLM-backed chat assistant gated by keyword classification.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CarCare Assist backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	for _, ensure := range []func(context.Context, *sql.DB) error{
		chatSQLite.EnsureSchema,
		bookingSQLite.EnsureSchema,
		contactSQLite.EnsureSchema,
	} {
		if err := ensure(ctx, db); err != nil {
			logger.Error(ctx, "Failed to ensure schema: ", err)
			return
		}
	}

	// 4. Generation provider
	provider, err := llmprovider.New(llmprovider.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize generation provider: ", err)
		return
	}
	logger.Infof(ctx, "Generation provider: %s (%s)", provider.Name(), provider.Model())

	// 5. Chat domain
	router := classify.NewRouter(classify.Config{})
	chatRepo := chatSQLite.New(db, logger)
	chatUseCase := chatUC.New(logger, router, provider, chatRepo, llmprovider.GenerationConfig{
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		Temperature:     cfg.LLM.Temperature,
		TopK:            cfg.LLM.TopK,
	}, cfg.Chat.HistoryLimit)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. Booking & contact domains
	bookingHandler := bookingHTTP.New(logger, bookingUC.New(logger, bookingSQLite.New(db, logger)))
	contactHandler := contactHTTP.New(logger, contactUC.New(logger, contactSQLite.New(db, logger)))

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             db,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ChatHandler:    chatHandler,
		BookingHandler: bookingHandler,
		ContactHandler: contactHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
