package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("username or email already exists")
)

type Repository interface {
	// Create inserts a new account and returns the stored row, re-read by
	// its assigned ID. A username or email collision yields ErrDuplicate
	// with nothing written.
	Create(ctx context.Context, n NewAccount) (Account, error)

	GetByID(ctx context.Context, id int64) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)

	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
