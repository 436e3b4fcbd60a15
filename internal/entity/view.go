package entity

import "time"

// VideoView is an append-only log row. It doubles as the once-per-day-per-IP
// counting guard and as the source for analytics aggregation.
type VideoView struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	IP        string    `json:"ip"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type CountryViews struct {
	Country string `json:"country"`
	Views   int64  `json:"views"`
}
