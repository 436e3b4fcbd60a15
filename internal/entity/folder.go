package entity

import "time"

// Folder is a user-owned tree node. ID is a random lowercase-alphanumeric slug,
// ParentID is nil for root folders. The parent chain is kept acyclic by a
// walk-up check before every create and move.
type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ParentID  *string   `json:"parent_id,omitempty"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
