package dto

import (
	"time"

	"skill-bridge/internal/domain/account"
)

// AccountResponse mirrors the field names the dashboard client reads.
// The stored credential never appears here.
type AccountResponse struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Skills          []string  `json:"skills"`
	LinkedinProfile string    `json:"linkedinProfile,omitempty"`
	GithubProfile   string    `json:"githubProfile,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewAccountResponse(a account.Account) AccountResponse {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	return AccountResponse{
		ID:              a.ID,
		Username:        a.Username,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Role:            a.Role,
		Skills:          skills,
		LinkedinProfile: a.LinkedinProfile,
		GithubProfile:   a.GithubProfile,
		CreatedAt:       a.CreatedAt,
	}
}
