package entity

import "time"

// WebSettings is a singleton row holding platform-wide configuration. CPM is
// the revenue per 1000 counted views.
type WebSettings struct {
	ID        string    `json:"id"`
	CPM       float64   `json:"cpm"`
	UpdatedAt time.Time `json:"updated_at"`
}
