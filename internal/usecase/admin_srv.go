package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	GetDashboard(ctx context.Context) (*response.AdminDashboardResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.MessageResponse, error)
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.MessageResponse, error)
	ListUsers(ctx context.Context, q *request.ListUsersQuery) ([]response.UserResponse, error)
	ListStores(ctx context.Context, q *request.ListStoresQuery) ([]response.StoreWithRatingResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log,
	}
}

// GetDashboard returns platform-wide totals: three independent counts
func (s *adminService) GetDashboard(ctx context.Context) (*response.AdminDashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch dashboard statistics")
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count stores", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch dashboard statistics")
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count ratings", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch dashboard statistics")
	}

	return &response.AdminDashboardResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

func (s *adminService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.MessageResponse, error) {
	// 1. Validate input - same bounds as self-registration
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already exists")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Only valid roles are assigned; anything else becomes USER
	role := entity.NormalizeRole(req.Role)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Address:      req.Address,
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to add user")
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))

	return &response.MessageResponse{
		Message: fmt.Sprintf("%s created successfully.", role),
	}, nil
}

func (s *adminService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.MessageResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create store validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: owner_id must be a valid UUID")
	}

	store := &entity.Store{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	// 2. Insert store and upgrade the owner role in one transaction
	if err := s.repo.Store.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, fmt.Errorf("owner user not found")
		}
		if errors.Is(err, repository.ErrStoreEmailExists) {
			return nil, fmt.Errorf("store email already exists")
		}
		s.log.Error("Failed to create store", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to add store")
	}

	s.log.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return &response.MessageResponse{Message: "Store created successfully."}, nil
}

func (s *adminService) ListUsers(ctx context.Context, q *request.ListUsersQuery) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx, repository.ListUsersOptions{
		Search: q.Search,
		Role:   q.Role,
		SortBy: q.SortBy,
		Order:  q.Order,
	})
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch users")
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return userResponses, nil
}

func (s *adminService) ListStores(ctx context.Context, q *request.ListStoresQuery) ([]response.StoreWithRatingResponse, error) {
	stores, err := s.repo.Store.FindAllWithRating(ctx, repository.ListStoresOptions{
		Search: q.Search,
		SortBy: q.SortBy,
		Order:  q.Order,
	})
	if err != nil {
		s.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch stores")
	}

	storeResponses := make([]response.StoreWithRatingResponse, len(stores))
	for i, store := range stores {
		storeResponses[i] = response.StoreWithRatingToResponse(store)
	}

	return storeResponses, nil
}
