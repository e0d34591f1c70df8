package adaptor

import (
	"store-rating/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Admin *AdminHandler
	User  *UserHandler
	Owner *OwnerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Admin: NewAdminHandler(service.Admin, log),
		User:  NewUserHandler(service.User, log),
		Owner: NewOwnerHandler(service.Owner, log),
	}
}
