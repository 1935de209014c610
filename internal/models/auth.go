package models

// IssueTokenRequest is the payload for requesting an access token.
type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
	Name  string `json:"name" binding:"omitempty,min=2" example:"John Doe"`
}

// TokenResponse carries a signed access token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}
