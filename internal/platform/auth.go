package platform

import (
	"context"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser carries the optional user record embedded in a login response
type LoginUser struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type,omitempty"`
	ExpiresIn   int        `json:"expires_in,omitempty"`
	Role        string     `json:"role,omitempty"`
	User        *LoginUser `json:"user,omitempty"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password"`
}

// RegisteredUser is the user record returned by registration
type RegisteredUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Login authenticates with the backend and returns the issued token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	var loginResp LoginResponse
	if err := c.postJSON(ctx, "/auth/login", req, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisteredUser, error) {
	var user RegisteredUser
	if err := c.postJSON(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
