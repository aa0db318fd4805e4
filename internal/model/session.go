package model

import "time"

// Session a signed-in dashboard user. Token is the upstream bearer token and never leaves the server.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session status values reported to the UI chrome
const (
	SessionLoading         = "loading"
	SessionAuthenticated   = "authenticated"
	SessionUnauthenticated = "unauthenticated"
)
