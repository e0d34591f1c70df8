package response

import (
	"store-rating/internal/data/entity"
)

type StoreWithRatingResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	AverageRating float64 `json:"averageRating"`
}

type StoreForUserResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overallRating"`
	MyRating      *int    `json:"myRating"`
}

// Helper converters
func StoreWithRatingToResponse(store *entity.StoreWithRating) StoreWithRatingResponse {
	return StoreWithRatingResponse{
		ID:            store.ID.String(),
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		AverageRating: store.AverageRating,
	}
}

func StoreForUserToResponse(store *entity.StoreForUser) StoreForUserResponse {
	return StoreForUserResponse{
		ID:            store.ID.String(),
		Name:          store.Name,
		Address:       store.Address,
		OverallRating: store.OverallRating,
		MyRating:      store.MyRating,
	}
}
