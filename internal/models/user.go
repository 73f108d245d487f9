package models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleClub    UserRole = "club"
	RoleStudent UserRole = "student"
)

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`

	// Student-only fields, derived from the seat number at login.
	SeatNumber string `json:"usn,omitempty"`
	Department string `json:"department,omitempty"`
	Batch      string `json:"batch,omitempty"`
}
