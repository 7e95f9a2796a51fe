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

const roundColumns = `id, name, description, created_at, updated_at`

// InterviewRoundRepo implements storage.InterviewRoundRepository using PostgreSQL.
type InterviewRoundRepo struct {
	db Querier
}

func NewInterviewRoundRepo(db *pgxpool.Pool) *InterviewRoundRepo {
	return &InterviewRoundRepo{db: db}
}

var _ storage.InterviewRoundRepository = (*InterviewRoundRepo)(nil)

func (r *InterviewRoundRepo) queryOne(ctx context.Context, query string, args ...any) (*models.InterviewRound, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.InterviewRound])
}

func (r *InterviewRoundRepo) Create(ctx context.Context, round *models.InterviewRound) (*models.InterviewRound, error) {
	created, err := r.queryOne(ctx,
		`INSERT INTO interview_rounds (name, description) VALUES ($1, $2) RETURNING `+roundColumns,
		round.Name, round.Description)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("interview round %q: %w", round.Name, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create interview round: %w", err)
	}
	return created, nil
}

func (r *InterviewRoundRepo) GetByID(ctx context.Context, id int64) (*models.InterviewRound, error) {
	round, err := r.queryOne(ctx, `SELECT `+roundColumns+` FROM interview_rounds WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interview round %d: %w", id, err)
	}
	return round, nil
}

func (r *InterviewRoundRepo) searchFilter(search string) *queryBuilder {
	b := &queryBuilder{}
	if search != "" {
		b.where("name ILIKE " + b.arg(containsPattern(search)))
	}
	return b
}

func (r *InterviewRoundRepo) List(ctx context.Context, params storage.ListParams) ([]models.InterviewRound, error) {
	b := r.searchFilter(params.Search)
	query := b.build(`SELECT `+roundColumns+` FROM interview_rounds`, "id", params.Limit, params.Offset)
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interview rounds: %w", err)
	}
	rounds, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InterviewRound])
	if err != nil {
		return nil, fmt.Errorf("failed to scan interview rounds: %w", err)
	}
	if rounds == nil {
		rounds = []models.InterviewRound{}
	}
	return rounds, nil
}

func (r *InterviewRoundRepo) Count(ctx context.Context, search string) (int, error) {
	b := r.searchFilter(search)
	query := b.build(`SELECT COUNT(*) FROM interview_rounds`, "", 0, 0)
	return countRows(ctx, r.db, query, b.args...)
}

// Update renames or re-describes a round. Interviews keep the round name they
// were scheduled with.
func (r *InterviewRoundRepo) Update(ctx context.Context, round *models.InterviewRound) (*models.InterviewRound, error) {
	updated, err := r.queryOne(ctx, `
		UPDATE interview_rounds SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+roundColumns,
		round.ID, round.Name, round.Description)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("interview round %q: %w", round.Name, storage.ErrConflict)
		}
		if err = notFoundIfNoRows(err); errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update interview round %d: %w", round.ID, err)
	}
	return updated, nil
}

func (r *InterviewRoundRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interview_rounds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview round %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
