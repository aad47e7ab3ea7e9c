package postgres

import (
	"context"
	"errors"
	"fmt"

	"skill-bridge/internal/database"
	"skill-bridge/internal/database/schema"
	"skill-bridge/internal/domain/account"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type AccountRepository struct {
	db    database.DB
	table string
}

func NewAccountRepository(db database.DB) *AccountRepository {
	return &AccountRepository{db: db, table: schema.AccountsTable()}
}

func (r *AccountRepository) Create(ctx context.Context, n account.NewAccount) (account.Account, error) {
	skills, err := encodeSkills(n.Skills)
	if err != nil {
		return account.Account{}, err
	}

	role := n.Role
	if role == "" {
		role = account.DefaultRole
	}

	var id int64
	err = r.db.QueryRow(
		ctx,
		fmt.Sprintf(`INSERT INTO %s
	(username, password_hash, first_name, last_name, email, role, skills, linkedin_profile, github_profile)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id`, r.table),
		n.Username,
		n.PasswordHash,
		n.FirstName,
		n.LastName,
		n.Email,
		role,
		skills,
		n.LinkedinProfile,
		n.GithubProfile,
	).Scan(&id)
	if err != nil {
		// The UNIQUE columns are the authoritative guard: a concurrent
		// registration that slipped past the pre-check fails here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.Account{}, account.ErrDuplicate
		}
		return account.Account{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT id, username, password_hash, first_name, last_name, email, role, skills, linkedin_profile, github_profile, created_at
	FROM %s WHERE id = $1`, r.table),
		id,
	)
	return scanAccount(row)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT id, username, password_hash, first_name, last_name, email, role, skills, linkedin_profile, github_profile, created_at
	FROM %s WHERE username = $1`, r.table),
		username,
	)
	return scanAccount(row)
}

func (r *AccountRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE username = $1 OR email = $2)`, r.table),
		username,
		email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var (
		a        account.Account
		skills   string
		linkedin *string
		github   *string
	)
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Role,
		&skills,
		&linkedin,
		&github,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}

	a.Skills, err = decodeSkills(skills)
	if err != nil {
		return account.Account{}, err
	}
	if linkedin != nil {
		a.LinkedinProfile = *linkedin
	}
	if github != nil {
		a.GithubProfile = *github
	}
	return a, nil
}
