package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hrm-api/internal/models"
	"hrm-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceResolver implements storage.ReferenceResolver. Lookups ignore case
// and surrounding whitespace. A missing row is inserted with ON CONFLICT DO
// NOTHING and re-read, so a concurrent insert of the same name resolves as Found.
type ReferenceResolver struct {
	db Querier
}

func NewReferenceResolver(db *pgxpool.Pool) *ReferenceResolver {
	return &ReferenceResolver{db: db}
}

func (r *ReferenceResolver) WithTx(tx pgx.Tx) storage.ReferenceResolver {
	return &ReferenceResolver{db: tx}
}

var _ storage.ReferenceResolver = (*ReferenceResolver)(nil)

// uniqueNames trims names, drops blanks and keeps the first spelling of each
// case-insensitive duplicate, preserving order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

// resolveOne runs find, then insert, then find again when the insert lost a race.
func resolveOne[T any](
	ctx context.Context,
	find func(context.Context) (*T, error),
	insert func(context.Context) (*T, error),
) (storage.Resolved[T], error) {
	found, err := find(ctx)
	if err == nil {
		return storage.Resolved[T]{Value: *found, Outcome: storage.Found}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return storage.Resolved[T]{}, err
	}

	created, err := insert(ctx)
	if err == nil {
		return storage.Resolved[T]{Value: *created, Outcome: storage.Created}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return storage.Resolved[T]{}, err
	}

	found, err = find(ctx)
	if err != nil {
		return storage.Resolved[T]{}, err
	}
	return storage.Resolved[T]{Value: *found, Outcome: storage.Found}, nil
}

func collectOne[T any](ctx context.Context, db Querier, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
}

func (r *ReferenceResolver) ResolveSkills(ctx context.Context, names []string) ([]storage.Resolved[models.Skill], error) {
	unique := uniqueNames(names)
	out := make([]storage.Resolved[models.Skill], 0, len(unique))
	for _, name := range unique {
		res, err := resolveOne(ctx,
			func(ctx context.Context) (*models.Skill, error) {
				return collectOne[models.Skill](ctx, r.db,
					`SELECT `+skillColumns+` FROM skills WHERE lower(name) = lower($1)`, name)
			},
			func(ctx context.Context) (*models.Skill, error) {
				return collectOne[models.Skill](ctx, r.db, `
					INSERT INTO skills (name, category) VALUES ($1, $2)
					ON CONFLICT DO NOTHING
					RETURNING `+skillColumns, name, models.DefaultSkillCategory)
			},
		)
		if err != nil {
			return nil, fmt.Errorf("resolve skill %q: %w", name, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// ResolvePositions matches positions by name alone. When several departments
// share a name, the oldest row wins.
func (r *ReferenceResolver) ResolvePositions(ctx context.Context, names []string) ([]storage.Resolved[models.Position], error) {
	unique := uniqueNames(names)
	out := make([]storage.Resolved[models.Position], 0, len(unique))
	for _, name := range unique {
		res, err := resolveOne(ctx,
			func(ctx context.Context) (*models.Position, error) {
				return collectOne[models.Position](ctx, r.db,
					`SELECT `+positionColumns+` FROM positions WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`, name)
			},
			func(ctx context.Context) (*models.Position, error) {
				return collectOne[models.Position](ctx, r.db, `
					INSERT INTO positions (name, department, level) VALUES ($1, $2, $3)
					ON CONFLICT DO NOTHING
					RETURNING `+positionColumns,
					name, models.DefaultPositionDepartment, string(models.DefaultPositionLevel))
			},
		)
		if err != nil {
			return nil, fmt.Errorf("resolve position %q: %w", name, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReferenceResolver) ResolveRound(ctx context.Context, name string) (storage.Resolved[models.InterviewRound], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Resolved[models.InterviewRound]{}, errors.New("resolve interview round: empty name")
	}
	res, err := resolveOne(ctx,
		func(ctx context.Context) (*models.InterviewRound, error) {
			return collectOne[models.InterviewRound](ctx, r.db,
				`SELECT `+roundColumns+` FROM interview_rounds WHERE lower(name) = lower($1)`, name)
		},
		func(ctx context.Context) (*models.InterviewRound, error) {
			return collectOne[models.InterviewRound](ctx, r.db, `
				INSERT INTO interview_rounds (name, description) VALUES ($1, $2)
				ON CONFLICT DO NOTHING
				RETURNING `+roundColumns, name, models.DefaultRoundDescription)
		},
	)
	if err != nil {
		return storage.Resolved[models.InterviewRound]{}, fmt.Errorf("resolve interview round %q: %w", name, err)
	}
	return res, nil
}
