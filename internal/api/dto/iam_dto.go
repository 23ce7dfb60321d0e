package dto

import "github.com/thecoders/cartunn-backend/internal/domain"

// SignUpRequest payload for account registration.
type SignUpRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

// SignInRequest payload for credential authentication.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representation of a registered user.
type UserResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// AuthenticatedUserResponse carries the issued token for a signed-in user.
type AuthenticatedUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.RoleNames(),
	}
}

// NewAuthenticatedUserResponse maps a signed-in user and token.
func NewAuthenticatedUserResponse(user *domain.User, token string) AuthenticatedUserResponse {
	return AuthenticatedUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}
}
