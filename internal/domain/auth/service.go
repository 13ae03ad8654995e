package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Login authenticates an employee by CPF and password.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
