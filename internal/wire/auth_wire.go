package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	infra Infra,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Credential endpoints are rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(infra.Redis, config.RateLimit, log))

		r.Post("/api/register", authHandler.Register)
		r.Post("/api/login", authHandler.Login)
	})
}
