package order

import (
	"context"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
)

// Publisher is the notification hand-off consumed by the service; satisfied
// by the notify dispatcher.
type Publisher interface {
	Publish(ctx context.Context, e domain.CreatedEvent) error
}
