package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

type Employee struct {
	ID           string
	Name         string
	Position     string
	CPF          string
	PasswordHash string
	Role         Role
	IsActive     bool

	// HiredAt is the employment start date; summaries never reach back
	// before it.
	HiredAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
