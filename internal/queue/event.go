// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// BookingCreatedEvent is published after an order or reservation has
// been persisted.  It carries enough information for downstream
// consumers to log or notify without querying the primary store.
// Publishing is best effort and never blocks a request from succeeding.
type BookingCreatedEvent struct {
	Kind       string  `json:"kind"` // "order" or "reservation"
	TenantID   string  `json:"tenant_id"`
	ResourceID string  `json:"resource_id"`
	Email      string  `json:"email"`
	MovieTitle string  `json:"movie_title,omitempty"`
	Seats      int64   `json:"seats,omitempty"`
	TotalPrice float64 `json:"total_price,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
