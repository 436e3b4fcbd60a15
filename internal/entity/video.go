package entity

import "time"

// Video carries two earnings counters: Earnings accumulates CPM revenue from
// counted views, WithdrawnEarnings tracks how much of that has been swept into
// payouts. WithdrawnEarnings never exceeds Earnings.
type Video struct {
	ID                string    `json:"id"`
	ExternalID        string    `json:"external_id"`
	UserID            string    `json:"user_id"`
	FolderID          *string   `json:"folder_id,omitempty"`
	Title             string    `json:"title"`
	Earnings          float64   `json:"earnings"`
	WithdrawnEarnings float64   `json:"withdrawn_earnings"`
	TotalViews        int64     `json:"total_views"`
	TotalLikes        int64     `json:"total_likes"`
	TotalDislikes     int64     `json:"total_dislikes"`
	ThumbnailURL      string    `json:"thumbnail_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Available returns the banked earnings not yet swept into a payout.
func (v *Video) Available() float64 {
	return v.Earnings - v.WithdrawnEarnings
}
