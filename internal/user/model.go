package user

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID           uint
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         string
	Active       bool
	CreatedAt    time.Time
}

// Actor is the verified bearer identity a request carries. Core services
// take it as an argument; nothing reads it from ambient state.
type Actor struct {
	ID    uint
	Email string
	Role  string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}
