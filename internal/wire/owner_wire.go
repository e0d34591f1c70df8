package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(
	r chi.Router,
	ownerHandler *adaptor.OwnerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.RequireRole(string(entity.RoleStoreOwner), log),
	).Route("/api/owner", func(r chi.Router) {
		r.Get("/dashboard", ownerHandler.GetDashboard)
	})
}
