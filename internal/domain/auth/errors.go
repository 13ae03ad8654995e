package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid cpf or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("refresh token revoked")
)
