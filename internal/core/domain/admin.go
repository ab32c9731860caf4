package domain

import "time"

const RoleAdmin = "admin"

// AdminToken is a signed credential issued after a successful admin login.
type AdminToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
