package storage

import (
	"context"

	"hrm-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// Transactor runs fn inside a database transaction, committing when fn returns nil.
type Transactor interface {
	InTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// ListParams is the common offset pagination + free-text search input.
type ListParams struct {
	Search string
	Limit  int
	Offset int
}

// CandidateFilter narrows candidate listings. Skills and Positions match by
// case-insensitive name: any name within a field, every field that is set.
type CandidateFilter struct {
	Search    string
	NameOnly  bool // search fullName only instead of fullName and email
	Skills    []string
	Positions []string
	Limit     int
	Offset    int
}

// InterviewFilter narrows interview listings. Dates are inclusive YYYY-MM-DD bounds.
type InterviewFilter struct {
	Search   string
	Statuses []models.InterviewStatus
	Rounds   []string
	FromDate string
	ToDate   string
	Limit    int
	Offset   int
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, params ListParams) ([]models.User, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// CandidateRepository defines the interface for candidate data operations.
// Create and Update write the candidate row only; skill and position links are
// managed with ReplaceSkills and ReplacePositions.
type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) (*models.Candidate, error)
	Update(ctx context.Context, c *models.Candidate) (*models.Candidate, error)
	GetByID(ctx context.Context, id int64) (*models.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	ReplaceSkills(ctx context.Context, candidateID int64, skillIDs []int64) error
	ReplacePositions(ctx context.Context, candidateID int64, positionIDs []int64) error
	List(ctx context.Context, filter CandidateFilter) ([]models.Candidate, error)
	Count(ctx context.Context, filter CandidateFilter) (int, error)
	WithTx(tx pgx.Tx) CandidateRepository
}

// InterviewRepository defines the interface for interview and review data operations.
type InterviewRepository interface {
	Create(ctx context.Context, iv *models.Interview) (*models.Interview, error)
	Update(ctx context.Context, iv *models.Interview) (*models.Interview, error)
	GetByID(ctx context.Context, id int64) (*models.Interview, error)
	SlotTaken(ctx context.Context, candidateID int64, date, startTime, endTime string) (bool, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error)
	List(ctx context.Context, filter InterviewFilter) ([]models.Interview, error)
	Count(ctx context.Context, filter InterviewFilter) (int, error)
	Delete(ctx context.Context, id int64) error
	UpsertReview(ctx context.Context, interviewID int64, score *float64, feedback *string) (*models.Review, error)
	WithTx(tx pgx.Tx) InterviewRepository
}

// SkillRepository defines the interface for skill data operations.
type SkillRepository interface {
	Create(ctx context.Context, s *models.Skill) (*models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	List(ctx context.Context, params ListParams) ([]models.Skill, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// PositionRepository defines the interface for position data operations.
type PositionRepository interface {
	Create(ctx context.Context, p *models.Position) (*models.Position, error)
	GetByID(ctx context.Context, id int64) (*models.Position, error)
	List(ctx context.Context, params ListParams) ([]models.Position, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, p *models.Position) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
}

// InterviewRoundRepository defines the interface for interview round data operations.
type InterviewRoundRepository interface {
	Create(ctx context.Context, r *models.InterviewRound) (*models.InterviewRound, error)
	GetByID(ctx context.Context, id int64) (*models.InterviewRound, error)
	List(ctx context.Context, params ListParams) ([]models.InterviewRound, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, r *models.InterviewRound) (*models.InterviewRound, error)
	Delete(ctx context.Context, id int64) error
}

// ReferenceResolver finds reference rows by case-insensitive trimmed name and
// creates the missing ones with default secondary fields. Repeated names in the
// input resolve to a single entry.
type ReferenceResolver interface {
	ResolveSkills(ctx context.Context, names []string) ([]Resolved[models.Skill], error)
	ResolvePositions(ctx context.Context, names []string) ([]Resolved[models.Position], error)
	ResolveRound(ctx context.Context, name string) (Resolved[models.InterviewRound], error)
	WithTx(tx pgx.Tx) ReferenceResolver
}
