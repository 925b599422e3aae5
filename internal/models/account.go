package models

import "time"

// Role is the closed set of caller roles encoded into session tokens.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RegNo     string    `json:"regNo"`
	Branch    string    `json:"branch"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
