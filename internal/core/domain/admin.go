package domain

import "time"

type Admin struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Token roles. The vote route requires RoleVoter, the admin routes RoleAdmin.
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)
