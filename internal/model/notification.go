package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notification is one row of the admin notification feed. The list
// payload does not carry the nested order; it is fetched lazily
// through the detail endpoint when the admin expands the row.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationDetail is the detail payload, including the order
// summary the notification was raised for.
type NotificationDetail struct {
	Notification
	Order *OrderSummary `json:"order"`
}

// OrderSummary is the nested order snapshot embedded in a
// notification detail.
type OrderSummary struct {
	UserName      string      `json:"user_name"`
	Address       string      `json:"address"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items"`
}
