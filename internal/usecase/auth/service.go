package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"skill-bridge/internal/domain/account"
	"skill-bridge/internal/validation"
)

var (
	ErrDuplicateAccount   = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStorage            = errors.New("storage error")
)

type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Email           string
	Role            string
	Skills          []string
	LinkedinProfile string
	GithubProfile   string
}

type LoginInput struct {
	Username string
	Password string
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) (account.Account, error)
	Login(ctx context.Context, in LoginInput) (account.Account, error)
}

type Service struct {
	accounts account.Repository
}

func NewService(accounts account.Repository) *Service {
	return &Service{accounts: accounts}
}

// Register validates the submitted form, enforces uniqueness, and creates
// the account. Either a unique account is durably created and returned, or
// nothing is written.
func (s *Service) Register(ctx context.Context, in RegisterInput) (account.Account, error) {
	form := validation.SignupForm{
		Username:        in.Username,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}
	if err := form.Validate(); err != nil {
		return account.Account{}, err
	}

	// Friendly pre-check. The UNIQUE columns remain the real guarantee;
	// a race between check and insert resolves at the constraint.
	exists, err := s.accounts.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return account.Account{}, ErrStorage
	}
	if exists {
		return account.Account{}, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrStorage
	}

	role := in.Role
	if role == "" {
		role = account.DefaultRole
	}

	created, err := s.accounts.Create(ctx, account.NewAccount{
		Username:        in.Username,
		PasswordHash:    string(hash),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Role:            role,
		Skills:          dedupeSkills(in.Skills),
		LinkedinProfile: in.LinkedinProfile,
		GithubProfile:   in.GithubProfile,
	})
	if err != nil {
		if errors.Is(err, account.ErrDuplicate) {
			return account.Account{}, ErrDuplicateAccount
		}
		return account.Account{}, ErrStorage
	}

	return sanitize(created), nil
}

// Login verifies the claimed credentials. The failure is deliberately
// non-specific so callers cannot probe which usernames exist.
func (s *Service) Login(ctx context.Context, in LoginInput) (account.Account, error) {
	if in.Username == "" || in.Password == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrInvalidCredentials
		}
		return account.Account{}, ErrStorage
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}

	return sanitize(a), nil
}

// dedupeSkills drops blanks and repeated entries while preserving the
// order the member listed them in.
func dedupeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sanitize(a account.Account) account.Account {
	a.PasswordHash = ""
	if a.Skills == nil {
		a.Skills = []string{}
	}
	return a
}
