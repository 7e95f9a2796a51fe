package services

import (
	"context"

	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/transport/dto"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Create(ctx context.Context, caller *auth.Session, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, session *auth.Session) error
	List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.User], error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, caller *auth.Session, id int64) error
}

// CandidateService defines the interface for candidate business logic.
type CandidateService interface {
	AddCandidate(ctx context.Context, req *dto.CandidateRequest) (*models.Candidate, error)
	UpdateCandidate(ctx context.Context, req *dto.CandidateRequest) (*models.Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*models.Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error
	FilterCandidates(ctx context.Context, q *dto.CandidateFilterQuery) (*Page[models.Candidate], error)
	PaginateSearchable(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Candidate], error)
}

// InterviewService defines the interface for the interview lifecycle.
type InterviewService interface {
	ScheduleInterview(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error)
	UpdateInterview(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error)
	GetInterview(ctx context.Context, id int64) (*models.Interview, error)
	ListInterviews(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Interview], error)
	ListInterviewsByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error)
	DeleteInterview(ctx context.Context, id int64) error
	FilterInterviews(ctx context.Context, q *dto.InterviewFilterQuery) (*Page[models.Interview], error)
}

// SkillService defines the settings operations on skills.
type SkillService interface {
	Create(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error)
	Get(ctx context.Context, id int64) (*models.Skill, error)
	List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Skill], error)
	Update(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// PositionService defines the settings operations on positions.
type PositionService interface {
	Create(ctx context.Context, req *dto.PositionRequest) (*models.Position, error)
	Get(ctx context.Context, id int64) (*models.Position, error)
	List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Position], error)
	Update(ctx context.Context, req *dto.PositionRequest) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
}

// InterviewRoundService defines the settings operations on interview rounds.
type InterviewRoundService interface {
	Create(ctx context.Context, req *dto.InterviewRoundRequest) (*models.InterviewRound, error)
	Get(ctx context.Context, id int64) (*models.InterviewRound, error)
	List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.InterviewRound], error)
	Update(ctx context.Context, req *dto.InterviewRoundRequest) (*models.InterviewRound, error)
	Delete(ctx context.Context, id int64) error
}
