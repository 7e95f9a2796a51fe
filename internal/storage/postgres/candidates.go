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

const candidateColumns = `c.id, c.add_by, c.full_name, c.email, c.phone,
	c.total_experience::float8 AS total_experience,
	c.current_salary::float8 AS current_salary,
	c.expected_salary::float8 AS expected_salary,
	c.notes, c.education, c.previous_companies, c.availability, c.created_at, c.updated_at`

// CandidateRepo implements storage.CandidateRepository using PostgreSQL.
type CandidateRepo struct {
	db Querier
}

func NewCandidateRepo(db *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// WithTx creates a new CandidateRepo bound to the transaction.
func (r *CandidateRepo) WithTx(tx pgx.Tx) storage.CandidateRepository {
	return &CandidateRepo{db: tx}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

func (r *CandidateRepo) queryOne(ctx context.Context, query string, args ...any) (*models.Candidate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Candidate])
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Create inserts the candidate row. Skills and positions are linked separately.
func (r *CandidateRepo) Create(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	created, err := r.queryOne(ctx, `
		INSERT INTO candidates AS c (add_by, full_name, email, phone, total_experience, current_salary,
			expected_salary, notes, education, previous_companies, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+candidateColumns,
		c.AddBy, c.FullName, c.Email, c.Phone, c.TotalExperience, c.CurrentSalary,
		c.ExpectedSalary, c.Notes, nonNilStrings(c.Education), c.PreviousCompanies, c.Availability,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return created, nil
}

// Update replaces every scalar field of the candidate.
func (r *CandidateRepo) Update(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	updated, err := r.queryOne(ctx, `
		UPDATE candidates AS c
		SET add_by = $2, full_name = $3, email = $4, phone = $5, total_experience = $6,
			current_salary = $7, expected_salary = $8, notes = $9, education = $10,
			previous_companies = $11, availability = $12, updated_at = NOW()
		WHERE c.id = $1
		RETURNING `+candidateColumns,
		c.ID, c.AddBy, c.FullName, c.Email, c.Phone, c.TotalExperience, c.CurrentSalary,
		c.ExpectedSalary, c.Notes, nonNilStrings(c.Education), c.PreviousCompanies, c.Availability,
	)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		case pgErrCode(err) == pgUniqueViolation:
			return nil, storage.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update candidate %d: %w", c.ID, err)
	}
	return updated, nil
}

// GetByID returns the candidate with its skills and applied positions.
func (r *CandidateRepo) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	c, err := r.queryOne(ctx, `SELECT `+candidateColumns+` FROM candidates c WHERE c.id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate %d: %w", id, err)
	}
	list := []models.Candidate{*c}
	if err := r.loadRelations(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// GetByEmail looks a candidate up by email ignoring case. Relations are not loaded.
func (r *CandidateRepo) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	c, err := r.queryOne(ctx, `SELECT `+candidateColumns+` FROM candidates c WHERE lower(c.email) = lower($1)`, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate by email: %w", err)
	}
	return c, nil
}

func (r *CandidateRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidates WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check candidate %d: %w", id, err)
	}
	return ok, nil
}

// Delete removes the candidate. Interviews, their reviews and join rows cascade.
func (r *CandidateRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *CandidateRepo) ReplaceSkills(ctx context.Context, candidateID int64, skillIDs []int64) error {
	return r.replaceLinks(ctx, "candidate_skills", "skill_id", candidateID, skillIDs)
}

func (r *CandidateRepo) ReplacePositions(ctx context.Context, candidateID int64, positionIDs []int64) error {
	return r.replaceLinks(ctx, "candidate_positions", "position_id", candidateID, positionIDs)
}

// replaceLinks rewrites one join table for a candidate. Table and column come
// from the two callers above, never from input.
func (r *CandidateRepo) replaceLinks(ctx context.Context, table, column string, candidateID int64, ids []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear %s for candidate %d: %w", table, candidateID, err)
	}
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO `+table+` (candidate_id, `+column+`)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`, candidateID, ids)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to link %s for candidate %d: %w", table, candidateID, err)
	}
	return nil
}

func (r *CandidateRepo) filter(f storage.CandidateFilter) *queryBuilder {
	b := &queryBuilder{}
	if f.Search != "" {
		p := b.arg(containsPattern(f.Search))
		if f.NameOnly {
			b.where("c.full_name ILIKE " + p)
		} else {
			b.where("(c.full_name ILIKE " + p + " OR c.email ILIKE " + p + ")")
		}
	}
	if names := lowerAll(f.Skills); len(names) > 0 {
		b.where(`EXISTS (SELECT 1 FROM candidate_skills cs JOIN skills s ON s.id = cs.skill_id
			WHERE cs.candidate_id = c.id AND lower(s.name) = ANY(` + b.arg(names) + `))`)
	}
	if names := lowerAll(f.Positions); len(names) > 0 {
		b.where(`EXISTS (SELECT 1 FROM candidate_positions cp JOIN positions p ON p.id = cp.position_id
			WHERE cp.candidate_id = c.id AND lower(p.name) = ANY(` + b.arg(names) + `))`)
	}
	return b
}

// List returns a page of candidates, newest first, with relations loaded.
func (r *CandidateRepo) List(ctx context.Context, f storage.CandidateFilter) ([]models.Candidate, error) {
	b := r.filter(f)
	query := b.build(`SELECT `+candidateColumns+` FROM candidates c`, "c.created_at DESC, c.id DESC", f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	candidates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Candidate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan candidates: %w", err)
	}
	if candidates == nil {
		return []models.Candidate{}, nil
	}
	if err := r.loadRelations(ctx, candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *CandidateRepo) Count(ctx context.Context, f storage.CandidateFilter) (int, error) {
	b := r.filter(f)
	query := b.build(`SELECT COUNT(*) FROM candidates c`, "", 0, 0)
	n, err := countRows(ctx, r.db, query, b.args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return n, nil
}

// loadRelations fills Skills and AppliedPositions for every candidate with one
// query per relation.
func (r *CandidateRepo) loadRelations(ctx context.Context, candidates []models.Candidate) error {
	ids := make([]int64, len(candidates))
	index := make(map[int64]int, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].ID
		index[candidates[i].ID] = i
		candidates[i].Skills = []models.Skill{}
		candidates[i].AppliedPositions = []models.Position{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT cs.candidate_id, s.id, s.name, s.category, s.created_at, s.updated_at
		FROM candidate_skills cs JOIN skills s ON s.id = cs.skill_id
		WHERE cs.candidate_id = ANY($1)
		ORDER BY s.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load candidate skills: %w", err)
	}
	var candidateID int64
	var s models.Skill
	_, err = pgx.ForEachRow(rows, []any{&candidateID, &s.ID, &s.Name, &s.Category, &s.CreatedAt, &s.UpdatedAt}, func() error {
		i := index[candidateID]
		candidates[i].Skills = append(candidates[i].Skills, s)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan candidate skills: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT cp.candidate_id, p.id, p.name, p.department, p.level, p.created_at, p.updated_at
		FROM candidate_positions cp JOIN positions p ON p.id = cp.position_id
		WHERE cp.candidate_id = ANY($1)
		ORDER BY p.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load candidate positions: %w", err)
	}
	var p models.Position
	var level string
	_, err = pgx.ForEachRow(rows, []any{&candidateID, &p.ID, &p.Name, &p.Department, &level, &p.CreatedAt, &p.UpdatedAt}, func() error {
		p.Level = models.PositionLevel(level)
		i := index[candidateID]
		candidates[i].AppliedPositions = append(candidates[i].AppliedPositions, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan candidate positions: %w", err)
	}
	return nil
}
