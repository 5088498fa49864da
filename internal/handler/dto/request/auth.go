package request

// AdminLoginRequest carries the single admin account's credentials.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}
