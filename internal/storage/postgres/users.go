package postgres

import (
	"context"
	"errors"
	"fmt"

	"hrm-api/internal/models"
	"hrm-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, phone, email, password_hash, role, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) queryOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.User])
}

// Create inserts a user whose password is already hashed.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := r.queryOne(ctx, `
		INSERT INTO users (name, phone, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Name, user.Phone, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return u, nil
}

// GetByEmail retrieves a single user by email, ignoring case.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepo) searchFilter(search string) *queryBuilder {
	b := &queryBuilder{}
	if search != "" {
		b.where("name ILIKE " + b.arg(containsPattern(search)))
	}
	return b
}

// List returns a page of users, optionally filtered by name.
func (r *UserRepo) List(ctx context.Context, params storage.ListParams) ([]models.User, error) {
	b := r.searchFilter(params.Search)
	query := b.build(`SELECT `+userColumns+` FROM users`, "id", params.Limit, params.Offset)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *UserRepo) Count(ctx context.Context, search string) (int, error) {
	b := r.searchFilter(search)
	query := b.build(`SELECT COUNT(*) FROM users`, "", 0, 0)
	n, err := countRows(ctx, r.db, query, b.args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// Update overwrites the mutable user fields, including the password hash.
func (r *UserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := r.queryOne(ctx, `
		UPDATE users
		SET name = $2, phone = $3, email = $4, password_hash = $5, role = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		user.ID, user.Name, user.Phone, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		case pgErrCode(err) == pgUniqueViolation:
			return nil, storage.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return updated, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
