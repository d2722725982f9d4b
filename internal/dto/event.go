package dto

import "time"

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// StockMovementEvent is the audit record published after every successful
// stock adjustment.
type StockMovementEvent struct {
	ProductID     string    `json:"product_id"`
	SKU           string    `json:"sku"`
	PreviousStock float64   `json:"previous_stock"`
	NewStock      float64   `json:"new_stock"`
	Adjustment    float64   `json:"adjustment"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
