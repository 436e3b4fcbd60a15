package entity

import "time"

type PayoutStatus string

const (
	PayoutStatusPending  PayoutStatus = "pending"
	PayoutStatusApproved PayoutStatus = "approved"
	PayoutStatusRejected PayoutStatus = "rejected"
)

type Payout struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Amount    float64        `json:"amount"`
	Status    PayoutStatus   `json:"status"`
	PaidAt    *time.Time     `json:"paid_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Details   []PayoutDetail `json:"details,omitempty"`
}

// PayoutDetail records which video funded how much of a payout. The rows are
// the audit trail used to reverse the allocation when a payout is rejected.
type PayoutDetail struct {
	ID       string  `json:"id"`
	PayoutID string  `json:"payout_id"`
	VideoID  string  `json:"video_id"`
	Amount   float64 `json:"amount"`
}

type PaymentMethod struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Method        string    `json:"method"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
