package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	chatapi "github.com/liutentor/tentor-backend/internal/api/chat"
	"github.com/liutentor/tentor-backend/internal/api/docs"
	examapi "github.com/liutentor/tentor-backend/internal/api/exam"
	healthapi "github.com/liutentor/tentor-backend/internal/api/health"
	"github.com/liutentor/tentor-backend/internal/api/middleware"
	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/pkg/response"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	cfg *config.Config,
	examHandler *examapi.Handler,
	chatHandler *chatapi.Handler,
	healthHandler *healthapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.SecurityHeaders(cfg.Environment == "production"))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitCfg.GeneralLimit, cfg.RateLimitCfg.Window).Handler)

	// Completion requests carry a stricter budget: their own rate
	// limit, a body cap, and a hard deadline covering the whole stream.
	chatMiddleware := []func(http.Handler) http.Handler{
		middleware.NewRateLimiter(cfg.RateLimitCfg.ChatLimit, cfg.RateLimitCfg.Window).Handler,
		middleware.BodyLimit(cfg.ChatCfg.MaxBodyBytes),
		chimiddleware.Timeout(cfg.ChatCfg.RequestTimeout),
	}

	healthapi.RegisterRoutes(r, healthHandler)
	docs.RegisterRoutes(r)

	examapi.RegisterRoutes(r, examHandler, chatHandler, chatMiddleware...)
	chatapi.RegisterRoutes(r, chatHandler, chatMiddleware...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req.URL.Path)
	})

	return r
}
