package account

import "time"

const DefaultRole = "student"

// Account is the persisted registration record. PasswordHash never leaves
// the auth layer; responses carry a sanitized copy with the hash cleared.
type Account struct {
	ID              int64
	Username        string
	PasswordHash    string
	FirstName       string
	LastName        string
	Email           string
	Role            string
	Skills          []string
	LinkedinProfile string
	GithubProfile   string
	CreatedAt       time.Time
}

// NewAccount carries the fields the caller supplies at registration.
// ID and CreatedAt are assigned by the store.
type NewAccount struct {
	Username        string
	PasswordHash    string
	FirstName       string
	LastName        string
	Email           string
	Role            string
	Skills          []string
	LinkedinProfile string
	GithubProfile   string
}
