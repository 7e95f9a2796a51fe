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

const skillColumns = `id, name, category, created_at, updated_at`

// SkillRepo implements storage.SkillRepository using PostgreSQL.
type SkillRepo struct {
	db Querier
}

func NewSkillRepo(db *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{db: db}
}

var _ storage.SkillRepository = (*SkillRepo)(nil)

func (r *SkillRepo) queryOne(ctx context.Context, query string, args ...any) (*models.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Skill])
}

// Create inserts a skill. Names are unique ignoring case.
func (r *SkillRepo) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	created, err := r.queryOne(ctx,
		`INSERT INTO skills (name, category) VALUES ($1, $2) RETURNING `+skillColumns,
		s.Name, s.Category)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("skill %q: %w", s.Name, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return created, nil
}

func (r *SkillRepo) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	s, err := r.queryOne(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill %d: %w", id, err)
	}
	return s, nil
}

func (r *SkillRepo) searchFilter(search string) *queryBuilder {
	b := &queryBuilder{}
	if search != "" {
		p := b.arg(containsPattern(search))
		b.where("(name ILIKE " + p + " OR category ILIKE " + p + ")")
	}
	return b
}

func (r *SkillRepo) List(ctx context.Context, params storage.ListParams) ([]models.Skill, error) {
	b := r.searchFilter(params.Search)
	query := b.build(`SELECT `+skillColumns+` FROM skills`, "name, id", params.Limit, params.Offset)
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	skills, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Skill])
	if err != nil {
		return nil, fmt.Errorf("failed to scan skills: %w", err)
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

func (r *SkillRepo) Count(ctx context.Context, search string) (int, error) {
	b := r.searchFilter(search)
	query := b.build(`SELECT COUNT(*) FROM skills`, "", 0, 0)
	return countRows(ctx, r.db, query, b.args...)
}

func (r *SkillRepo) Update(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	updated, err := r.queryOne(ctx, `
		UPDATE skills SET name = $2, category = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+skillColumns,
		s.ID, s.Name, s.Category)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("skill %q: %w", s.Name, storage.ErrConflict)
		}
		if err = notFoundIfNoRows(err); errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update skill %d: %w", s.ID, err)
	}
	return updated, nil
}

// Delete removes a skill; candidate links cascade.
func (r *SkillRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
