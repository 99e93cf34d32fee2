package memory

import (
	"context"
	"sync"
)

type LoyaltyRepository struct {
	mu     sync.RWMutex
	points map[int]int
}

func NewLoyaltyRepository(seed map[int]int) *LoyaltyRepository {
	points := make(map[int]int, len(seed))
	for uid, p := range seed {
		points[uid] = p
	}
	return &LoyaltyRepository{points: points}
}

func (r *LoyaltyRepository) PointsFor(ctx context.Context, userID int) (int, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Unknown users have zero points, not an error.
	return r.points[userID], nil
}
