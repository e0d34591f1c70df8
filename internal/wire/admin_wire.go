package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures admin routes; every route requires both a valid
// token and the ADMIN role
func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.RequireRole(string(entity.RoleAdmin), log),
	).Route("/api/admin", func(r chi.Router) {
		r.Get("/dashboard", adminHandler.GetDashboard)
		r.Post("/users", adminHandler.CreateUser)
		r.Get("/users", adminHandler.ListUsers)
		r.Post("/stores", adminHandler.CreateStore)
		r.Get("/stores", adminHandler.ListStores)
	})
}
