package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is keyed on (user_id, store_id); a user holds at most one
// rating per store and resubmissions overwrite it.
type Rating struct {
	UserID    uuid.UUID `db:"user_id"`
	StoreID   uuid.UUID `db:"store_id"`
	Rating    int       `db:"rating"` // 1-5
	UpdatedAt time.Time `db:"updated_at"`
}
