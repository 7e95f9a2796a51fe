package handlers_test

import (
	"context"

	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, caller *auth.Session, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*services.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LoginResult), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, session *auth.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockUserService) List(ctx context.Context, q *dto.PaginationQuery) (*services.Page[models.User], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.User]), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, caller *auth.Session, id int64) error {
	return m.Called(ctx, caller, id).Error(0)
}

// MockInterviewService is a mock type for the services.InterviewService interface
type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) ScheduleInterview(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) UpdateInterview(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) GetInterview(ctx context.Context, id int64) (*models.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) ListInterviews(ctx context.Context, q *dto.PaginationQuery) (*services.Page[models.Interview], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.Interview]), args.Error(1)
}

func (m *MockInterviewService) ListInterviewsByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewService) DeleteInterview(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInterviewService) FilterInterviews(ctx context.Context, q *dto.InterviewFilterQuery) (*services.Page[models.Interview], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.Interview]), args.Error(1)
}

// MockCandidateService is a mock type for the services.CandidateService interface
type MockCandidateService struct {
	mock.Mock
}

func (m *MockCandidateService) AddCandidate(ctx context.Context, req *dto.CandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) UpdateCandidate(ctx context.Context, req *dto.CandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) GetCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) DeleteCandidate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCandidateService) FilterCandidates(ctx context.Context, q *dto.CandidateFilterQuery) (*services.Page[models.Candidate], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.Candidate]), args.Error(1)
}

func (m *MockCandidateService) PaginateSearchable(ctx context.Context, q *dto.PaginationQuery) (*services.Page[models.Candidate], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.Candidate]), args.Error(1)
}

// MockSkillService is a mock type for the services.SkillService interface
type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) Create(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillService) Get(ctx context.Context, id int64) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillService) List(ctx context.Context, q *dto.PaginationQuery) (*services.Page[models.Skill], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.Skill]), args.Error(1)
}

func (m *MockSkillService) Update(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Ensure mocks implement the interfaces
var (
	_ services.UserService      = (*MockUserService)(nil)
	_ services.InterviewService = (*MockInterviewService)(nil)
	_ services.CandidateService = (*MockCandidateService)(nil)
	_ services.SkillService     = (*MockSkillService)(nil)
)
