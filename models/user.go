package models

// User represents the active session profile. Name, phone and invite code
// are seeded from durable storage at startup; orders live only in memory
// for the session.
type User struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Balance    string  `json:"balance"`
	Avatar     string  `json:"avatar,omitempty"`
	Address    string  `json:"address,omitempty"`
	InviteCode string  `json:"invite_code,omitempty"`
	Orders     []Order `json:"orders"`
}

// RegisterInput holds data needed for registration
type RegisterInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	InviteCode string `json:"invite_code"`
}
