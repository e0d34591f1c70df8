package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type AdminDashboardResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

type OwnerDashboardResponse struct {
	StoreName     string          `json:"storeName"`
	AverageRating float64         `json:"averageRating"`
	TotalRatings  int             `json:"totalRatings"`
	Raters        []RaterResponse `json:"raters"`
}

type RaterResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	UpdatedAt time.Time `json:"updated_at"`
}

func RaterToResponse(rater *entity.StoreRater) RaterResponse {
	return RaterResponse{
		Name:      rater.Name,
		Email:     rater.Email,
		Rating:    rater.Rating,
		UpdatedAt: rater.UpdatedAt,
	}
}
