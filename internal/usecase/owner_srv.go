package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/repository"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OwnerService interface {
	GetDashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error)
}

type ownerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOwnerService(repo *repository.Repository, log *zap.Logger) OwnerService {
	return &ownerService{
		repo: repo,
		log:  log,
	}
}

// GetDashboard resolves the single store owned by the requesting user,
// its live average rating and the list of raters
func (s *ownerService) GetDashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error) {
	// 1. Find the store owned by this user
	store, err := s.repo.Store.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to find store for owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to fetch owner dashboard")
	}
	if store == nil {
		return nil, fmt.Errorf("no store found for this owner")
	}

	// 2. Average rating for this store, 0 when empty
	averageRating, err := s.repo.Rating.GetStoreAverageRating(ctx, store.ID)
	if err != nil {
		s.log.Error("Failed to get average rating",
			zap.Error(err),
			zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("failed to fetch owner dashboard")
	}

	// 3. Who rated it, most recent first
	raters, err := s.repo.Rating.FindRatersByStoreID(ctx, store.ID)
	if err != nil {
		s.log.Error("Failed to get raters",
			zap.Error(err),
			zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("failed to fetch owner dashboard")
	}

	raterResponses := make([]response.RaterResponse, len(raters))
	for i, rater := range raters {
		raterResponses[i] = response.RaterToResponse(rater)
	}

	return &response.OwnerDashboardResponse{
		StoreName:     store.Name,
		AverageRating: averageRating,
		TotalRatings:  len(raterResponses),
		Raters:        raterResponses,
	}, nil
}
