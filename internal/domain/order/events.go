package order

import "time"

// CreatedEvent is the payload handed to the notification channel when an
// order is committed. Downstream consumers receive the full order record;
// there is no schema versioning and no acknowledgement.
type CreatedEvent struct {
	MessageID  string    `json:"message_id"`
	OrderID    int       `json:"order_id"`
	UserID     int       `json:"user_id"`
	ProductIDs []int     `json:"product_ids"`
	Quantities []int     `json:"quantity"`
	LocationID int       `json:"location_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (CreatedEvent) EventName() string { return "order.created" }

func NewCreatedEvent(messageID string, o *Order) CreatedEvent {
	return CreatedEvent{
		MessageID:  messageID,
		OrderID:    o.ID,
		UserID:     o.UserID,
		ProductIDs: append([]int(nil), o.ProductIDs...),
		Quantities: append([]int(nil), o.Quantities...),
		LocationID: o.LocationID,
		OccurredAt: time.Now().UTC(),
	}
}
