package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the normal-user routes: store browsing and
// rating submission
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.RequireRole(string(entity.RoleUser), log),
	).Route("/api/user", func(r chi.Router) {
		r.Get("/stores", userHandler.ListStores)
		r.Post("/ratings", userHandler.SubmitRating)
	})
}
