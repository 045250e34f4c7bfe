package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	bookingHTTP "carcare-backend/internal/booking/delivery/http"
	chatHTTP "carcare-backend/internal/chat/delivery/http"
	contactHTTP "carcare-backend/internal/contact/delivery/http"
	"carcare-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// DB handle, used by readiness checks only
	db *sql.DB

	// CORS
	allowedOrigins []string

	// Domain handlers
	chatHandler    chatHTTP.Handler
	bookingHandler bookingHTTP.Handler
	contactHandler contactHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB             *sql.DB
	AllowedOrigins []string

	ChatHandler    chatHTTP.Handler
	BookingHandler bookingHTTP.Handler
	ContactHandler contactHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		allowedOrigins: cfg.AllowedOrigins,
		chatHandler:    cfg.ChatHandler,
		bookingHandler: cfg.BookingHandler,
		contactHandler: cfg.ContactHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
