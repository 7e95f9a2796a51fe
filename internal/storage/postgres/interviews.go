package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrm-api/internal/models"
	"hrm-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interviewSelect = `
	SELECT i.id, i.interviewer, i.candidate_id,
		to_char(i.date, 'YYYY-MM-DD'), to_char(i.start_time, 'HH24:MI:SS'), to_char(i.end_time, 'HH24:MI:SS'),
		i.interview_round, i.status, i.meeting_link, i.created_at, i.updated_at,
		c.full_name, c.email, c.phone,
		rv.id, rv.score::float8, rv.feedback, rv.created_at, rv.updated_at
	FROM interviews i
	JOIN candidates c ON c.id = i.candidate_id
	LEFT JOIN reviews rv ON rv.interview_id = i.id`

const interviewOrder = "i.date, i.start_time, i.id"

// InterviewRepo implements storage.InterviewRepository using PostgreSQL.
type InterviewRepo struct {
	db Querier
}

func NewInterviewRepo(db *pgxpool.Pool) *InterviewRepo {
	return &InterviewRepo{db: db}
}

// WithTx creates a new InterviewRepo bound to the transaction.
func (r *InterviewRepo) WithTx(tx pgx.Tx) storage.InterviewRepository {
	return &InterviewRepo{db: tx}
}

var _ storage.InterviewRepository = (*InterviewRepo)(nil)

// scanInterview reads one row produced by interviewSelect.
func scanInterview(row pgx.CollectableRow) (models.Interview, error) {
	var (
		iv       models.Interview
		status   string
		summary  models.CandidateSummary
		reviewID *int64
		score    *float64
		feedback *string
		rCreated *time.Time
		rUpdated *time.Time
	)
	err := row.Scan(
		&iv.ID, &iv.Interviewer, &iv.CandidateID,
		&iv.Date, &iv.StartTime, &iv.EndTime,
		&iv.InterviewRound, &status, &iv.MeetingLink, &iv.CreatedAt, &iv.UpdatedAt,
		&summary.FullName, &summary.Email, &summary.Phone,
		&reviewID, &score, &feedback, &rCreated, &rUpdated,
	)
	if err != nil {
		return models.Interview{}, err
	}
	iv.Status = models.InterviewStatus(status)
	summary.ID = iv.CandidateID
	iv.Candidate = &summary
	if reviewID != nil {
		iv.Review = &models.Review{
			ID:          *reviewID,
			InterviewID: iv.ID,
			Score:       score,
			Feedback:    feedback,
			CreatedAt:   *rCreated,
			UpdatedAt:   *rUpdated,
		}
	}
	return iv, nil
}

func (r *InterviewRepo) queryMany(ctx context.Context, query string, args ...any) ([]models.Interview, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	interviews, err := pgx.CollectRows(rows, scanInterview)
	if err != nil {
		return nil, err
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	return interviews, nil
}

// Create inserts the interview and returns it as stored.
func (r *InterviewRepo) Create(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO interviews (interviewer, candidate_id, date, start_time, end_time, interview_round, status, meeting_link)
		VALUES ($1, $2, $3::date, $4::time, $5::time, $6, $7, $8)
		RETURNING id`,
		iv.Interviewer, iv.CandidateID, iv.Date, iv.StartTime, iv.EndTime,
		iv.InterviewRound, string(iv.Status), iv.MeetingLink,
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("candidate %d: %w", iv.CandidateID, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites every interview field. The review is untouched.
func (r *InterviewRepo) Update(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE interviews
		SET interviewer = $2, candidate_id = $3, date = $4::date, start_time = $5::time, end_time = $6::time,
			interview_round = $7, status = $8, meeting_link = $9, updated_at = NOW()
		WHERE id = $1`,
		iv.ID, iv.Interviewer, iv.CandidateID, iv.Date, iv.StartTime, iv.EndTime,
		iv.InterviewRound, string(iv.Status), iv.MeetingLink,
	)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("candidate %d: %w", iv.CandidateID, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update interview %d: %w", iv.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, iv.ID)
}

func (r *InterviewRepo) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	rows, err := r.db.Query(ctx, interviewSelect+` WHERE i.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query interview %d: %w", id, err)
	}
	iv, err := pgx.CollectOneRow(rows, scanInterview)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan interview %d: %w", id, err)
	}
	return &iv, nil
}

// SlotTaken reports whether the candidate already has an interview at exactly
// this date, start and end time (24-hour values).
func (r *InterviewRepo) SlotTaken(ctx context.Context, candidateID int64, date, startTime, endTime string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM interviews
			WHERE candidate_id = $1 AND date = $2::date AND start_time = $3::time AND end_time = $4::time
		)`, candidateID, date, startTime, endTime).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check interview slot: %w", err)
	}
	return taken, nil
}

func (r *InterviewRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error) {
	interviews, err := r.queryMany(ctx, interviewSelect+` WHERE i.candidate_id = $1 ORDER BY `+interviewOrder, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews for candidate %d: %w", candidateID, err)
	}
	return interviews, nil
}

func (r *InterviewRepo) filter(f storage.InterviewFilter) *queryBuilder {
	b := &queryBuilder{}
	if f.Search != "" {
		p := b.arg(containsPattern(f.Search))
		b.where("(c.full_name ILIKE " + p + " OR c.email ILIKE " + p + " OR c.phone ILIKE " + p + ")")
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		b.where("i.status = ANY(" + b.arg(statuses) + ")")
	}
	if rounds := lowerAll(f.Rounds); len(rounds) > 0 {
		b.where("lower(trim(i.interview_round)) = ANY(" + b.arg(rounds) + ")")
	}
	if f.FromDate != "" {
		b.where("i.date >= " + b.arg(f.FromDate) + "::date")
	}
	if f.ToDate != "" {
		b.where("i.date <= " + b.arg(f.ToDate) + "::date")
	}
	return b
}

// List returns a page of interviews ordered by date and start time.
func (r *InterviewRepo) List(ctx context.Context, f storage.InterviewFilter) ([]models.Interview, error) {
	b := r.filter(f)
	query := b.build(interviewSelect, interviewOrder, f.Limit, f.Offset)
	interviews, err := r.queryMany(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

func (r *InterviewRepo) Count(ctx context.Context, f storage.InterviewFilter) (int, error) {
	b := r.filter(f)
	query := b.build(`SELECT COUNT(*) FROM interviews i JOIN candidates c ON c.id = i.candidate_id`, "", 0, 0)
	n, err := countRows(ctx, r.db, query, b.args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return n, nil
}

// Delete removes the interview; its review cascades.
func (r *InterviewRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// UpsertReview attaches a review to the interview, updating the existing one in place.
func (r *InterviewRepo) UpsertReview(ctx context.Context, interviewID int64, score *float64, feedback *string) (*models.Review, error) {
	var rv models.Review
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (interview_id, score, feedback)
		VALUES ($1, $2, $3)
		ON CONFLICT (interview_id) DO UPDATE
		SET score = EXCLUDED.score, feedback = EXCLUDED.feedback, updated_at = NOW()
		RETURNING id, interview_id, score::float8, feedback, created_at, updated_at`,
		interviewID, score, feedback,
	).Scan(&rv.ID, &rv.InterviewID, &rv.Score, &rv.Feedback, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("interview %d: %w", interviewID, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to save review for interview %d: %w", interviewID, err)
	}
	return &rv, nil
}
