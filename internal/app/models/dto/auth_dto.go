package dto

// RegisterRequest represents advisor registration data
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=80" example:"advisor1"`
	Password string `json:"password" binding:"required,max=72" example:"s3cret"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"advisor1"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"3600"`
}
