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

const positionColumns = `id, name, department, level, created_at, updated_at`

// PositionRepo implements storage.PositionRepository using PostgreSQL.
type PositionRepo struct {
	db Querier
}

func NewPositionRepo(db *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{db: db}
}

var _ storage.PositionRepository = (*PositionRepo)(nil)

func (r *PositionRepo) queryOne(ctx context.Context, query string, args ...any) (*models.Position, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Position])
}

// Create inserts a position. (name, department) is unique ignoring case.
func (r *PositionRepo) Create(ctx context.Context, p *models.Position) (*models.Position, error) {
	created, err := r.queryOne(ctx,
		`INSERT INTO positions (name, department, level) VALUES ($1, $2, $3) RETURNING `+positionColumns,
		p.Name, p.Department, string(p.Level))
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("position %q in %q: %w", p.Name, p.Department, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return created, nil
}

func (r *PositionRepo) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	p, err := r.queryOne(ctx, `SELECT `+positionColumns+` FROM positions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get position %d: %w", id, err)
	}
	return p, nil
}

func (r *PositionRepo) searchFilter(search string) *queryBuilder {
	b := &queryBuilder{}
	if search != "" {
		p := b.arg(containsPattern(search))
		b.where("(name ILIKE " + p + " OR department ILIKE " + p + ")")
	}
	return b
}

func (r *PositionRepo) List(ctx context.Context, params storage.ListParams) ([]models.Position, error) {
	b := r.searchFilter(params.Search)
	query := b.build(`SELECT `+positionColumns+` FROM positions`, "name, id", params.Limit, params.Offset)
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	positions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Position])
	if err != nil {
		return nil, fmt.Errorf("failed to scan positions: %w", err)
	}
	if positions == nil {
		positions = []models.Position{}
	}
	return positions, nil
}

func (r *PositionRepo) Count(ctx context.Context, search string) (int, error) {
	b := r.searchFilter(search)
	query := b.build(`SELECT COUNT(*) FROM positions`, "", 0, 0)
	return countRows(ctx, r.db, query, b.args...)
}

func (r *PositionRepo) Update(ctx context.Context, p *models.Position) (*models.Position, error) {
	updated, err := r.queryOne(ctx, `
		UPDATE positions SET name = $2, department = $3, level = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING `+positionColumns,
		p.ID, p.Name, p.Department, string(p.Level))
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("position %q in %q: %w", p.Name, p.Department, storage.ErrConflict)
		}
		if err = notFoundIfNoRows(err); errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update position %d: %w", p.ID, err)
	}
	return updated, nil
}

// Delete removes a position; candidate links cascade.
func (r *PositionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
