package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindRatersByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error)
	GetStoreAverageRating(ctx context.Context, storeID uuid.UUID) (float64, error)
	CountAll(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// Upsert inserts a rating, or overwrites the existing one when the
// (user_id, store_id) unique constraint fires. Concurrent submissions
// for the same key serialize at the constraint; last write wins.
func (rr *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (user_id, store_id, rating, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
	`

	_, err := rr.db.Exec(ctx, query,
		rating.UserID,
		rating.StoreID,
		rating.Rating,
	)

	if err != nil {
		rr.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("store_id", rating.StoreID.String()),
		)
		return fmt.Errorf("upsert rating for store %s by user %s: %w",
			rating.StoreID.String(), rating.UserID.String(), err)
	}

	return nil
}

// FindRatersByStoreID lists who rated a store, most recently updated
// first, for the owner dashboard
func (rr *ratingRepository) FindRatersByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error) {
	query := `
		SELECT u.name, u.email, r.rating, r.updated_at
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.store_id = $1
		ORDER BY r.updated_at DESC
	`

	rows, err := rr.db.Query(ctx, query, storeID)
	if err != nil {
		rr.log.Error("Failed to find raters by store ID",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find raters by store ID %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var raters []*entity.StoreRater
	for rows.Next() {
		var rater entity.StoreRater
		err := rows.Scan(
			&rater.Name,
			&rater.Email,
			&rater.Rating,
			&rater.UpdatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan rater row", zap.Error(err))
			return nil, fmt.Errorf("scan rater row: %w", err)
		}
		raters = append(raters, &rater)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate raters rows: %w", err)
	}

	return raters, nil
}

// GetStoreAverageRating computes the live average for one store,
// 0 when the store has no ratings yet
func (rr *ratingRepository) GetStoreAverageRating(ctx context.Context, storeID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE store_id = $1`

	var avgRating float64
	err := rr.db.QueryRow(ctx, query, storeID).Scan(&avgRating)
	if err != nil {
		rr.log.Error("Failed to get store average rating",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return 0, fmt.Errorf("get store average rating for %s: %w", storeID.String(), err)
	}

	return avgRating, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Database error counting ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}
