package dto

import "journalhub/internal/http-api/models"

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest: partial profile update; nil fields are left untouched
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// UserResponse: public view of a user
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// TokenResponse: bearer token envelope
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CredentialResponse: user plus a freshly issued token, returned by
// registration, login and profile update
type CredentialResponse struct {
	User  UserResponse  `json:"user"`
	Token TokenResponse `json:"token"`
}

func UserFromModel(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

func NewCredentialResponse(u *models.User, accessToken string) CredentialResponse {
	return CredentialResponse{
		User: UserFromModel(u),
		Token: TokenResponse{
			AccessToken: accessToken,
			TokenType:   "bearer",
		},
	}
}
