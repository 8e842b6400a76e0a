package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the editable order snapshot. TotalPrice is authoritative on
// the server side; the editor keeps a locally recomputed value between
// a quantity edit and the reconciling re-fetch.
type Order struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Address       string          `json:"address"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItem     `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID             int64           `json:"id"`
	MedicineName   string          `json:"medicine_name"`
	MedicineNameAr string          `json:"medicine_name_ar"`
	Quantity       int64           `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

// ComputeLineTotal returns Price × Quantity.
func (i OrderItem) ComputeLineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// SumItems returns the sum of all line totals, recomputed from the
// given items rather than read from any stored aggregate.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.ComputeLineTotal())
	}
	return total
}
