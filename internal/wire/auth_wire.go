package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	// Any authenticated role may change its own password
	r.With(middleware.Authenticate(config.JWT.Secret, log)).
		Put("/api/auth/update-password", authHandler.UpdatePassword)
}
