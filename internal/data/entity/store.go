package entity

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	BaseSimple
	Name    string    `db:"name"`
	Email   string    `db:"email"`
	Address string    `db:"address"`
	OwnerID uuid.UUID `db:"owner_id"`
}

// StoreWithRating is the admin listing row: store columns plus the
// live average over all its ratings (0 when unrated).
type StoreWithRating struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Address       string
	AverageRating float64
}

// StoreForUser is the end-user listing row. MyRating is nil when the
// requesting user has not rated the store.
type StoreForUser struct {
	ID            uuid.UUID
	Name          string
	Address       string
	OverallRating float64
	MyRating      *int
}

// StoreRater is one entry of the owner dashboard rater list
type StoreRater struct {
	Name      string
	Email     string
	Rating    int
	UpdatedAt time.Time
}
