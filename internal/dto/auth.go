package dto

// ── auth ──

// SignInRequest credentials posted by the sign-in page
type SignInRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// SessionResponse what the UI chrome shows about the signed-in user
type SessionResponse struct {
	Status    string `json:"status"`
	UserID    string `json:"userId,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	ExpiresIn int    `json:"expiresIn,omitempty"`
}
