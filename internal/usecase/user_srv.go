package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService covers the USER role surface: browsing stores and
// submitting ratings.
type UserService interface {
	ListStores(ctx context.Context, userID uuid.UUID, q *request.ListStoresQuery) ([]response.StoreForUserResponse, error)
	SubmitRating(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.MessageResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) ListStores(ctx context.Context, userID uuid.UUID, q *request.ListStoresQuery) ([]response.StoreForUserResponse, error) {
	stores, err := s.repo.Store.FindAllForUser(ctx, userID, repository.ListStoresOptions{
		Search: q.Search,
		SortBy: q.SortBy,
		Order:  q.Order,
	})
	if err != nil {
		s.log.Error("Failed to list stores for user",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to fetch stores")
	}

	storeResponses := make([]response.StoreForUserResponse, len(stores))
	for i, store := range stores {
		storeResponses[i] = response.StoreForUserToResponse(store)
	}

	return storeResponses, nil
}

func (s *userService) SubmitRating(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.MessageResponse, error) {
	// 1. Validate before anything is written; out-of-range ratings
	// never reach the database
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit rating validation failed", zap.Any("errors", errs))
		if _, ok := errs["Rating"]; ok {
			return nil, fmt.Errorf("rating must be between 1 and 5")
		}
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: store_id must be a valid UUID")
	}

	// 2. Upsert - a resubmission overwrites the previous value
	rating := &entity.Rating{
		UserID:  userID,
		StoreID: storeID,
		Rating:  req.Rating,
	}

	if err := s.repo.Rating.Upsert(ctx, rating); err != nil {
		s.log.Error("Failed to submit rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("failed to submit rating")
	}

	s.log.Info("Rating submitted",
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID.String()),
		zap.Int("rating", req.Rating))

	return &response.MessageResponse{Message: "Rating submitted successfully."}, nil
}
