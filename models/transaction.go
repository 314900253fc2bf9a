package models

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentTransfer:
		return true
	}
	return false
}

type Transaction struct {
	ID              int           `json:"id"`
	TransactionCode string        `json:"transaction_code"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   string        `json:"payment_status"`
	Status          string        `json:"status"` // completed, pending, cancelled
	CancelReason    string        `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type SalesSummary struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalItemsSold    int     `json:"total_items_sold"`
}

// DailySale is one point on the sales chart: revenue for a single day.
type DailySale struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type MonthlySale struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// PaymentMethodCount is the transaction count per settlement type, feeding
// the payment-method pie chart.
type PaymentMethodCount struct {
	PaymentMethod PaymentMethod `json:"payment_method"`
	Total         int           `json:"total"`
}

type TopItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Sold        int     `json:"sold,omitempty"`
}
