package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Employee struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	LastAccess time.Time `json:"lastAccess"`
}

// Session is the single currently authenticated actor. It carries the same
// shape as the employee record it was built from.
type Session struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	LastAccess time.Time `json:"lastAccess"`
}
