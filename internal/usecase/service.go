package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Admin AdminService
	User  UserService
	Owner OwnerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		Admin: NewAdminService(repo, log),
		User:  NewUserService(repo, log),
		Owner: NewOwnerService(repo, log),
	}
}
