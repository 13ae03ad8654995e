package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
)

// currentEmployee extracts the authenticated employee's ID and role from
// the verified token. It only runs behind AuthRequired, so a missing claim
// means a malformed token, not a missing login.
func currentEmployee(r *http.Request) (id string, role employee.Role, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	id, ok := claims["employee_id"].(string)
	if !ok || id == "" {
		return "", "", auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", auth.ErrInvalidToken
	}
	return id, employee.Role(roleStr), nil
}
