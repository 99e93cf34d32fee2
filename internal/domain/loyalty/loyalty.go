package loyalty

import "context"

// Points is a user's loyalty balance. Unknown users have zero points rather
// than no record.
type Points struct {
	UserID int `json:"user_id"`
	Points int `json:"points"`
}

type Repository interface {
	// PointsFor returns the user's balance, 0 when the user has none.
	PointsFor(ctx context.Context, userID int) (int, error)
}
