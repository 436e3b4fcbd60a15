package entity

import "time"

const (
	AudienceUser  = "user"
	AudienceAdmin = "admin"
)

// Session is the server-side record backing a JWT. The opaque Token travels
// inside the JWT; deleting the row revokes the token immediately.
type Session struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Token     string    `json:"-"`
	Audience  string    `json:"audience"`
	UserAgent string    `json:"user_agent,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
