package services_test

import (
	"context"

	"hrm-api/internal/models"
	"hrm-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx runs the callback without a transaction. The mock repositories
// return themselves from WithTx.
type fakeTx struct {
	calls int
}

func (f *fakeTx) InTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	return fn(nil)
}

var _ storage.Transactor = (*fakeTx)(nil)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, params storage.ListParams) ([]models.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

// MockCandidateRepository is a mock type for the storage.CandidateRepository interface
type MockCandidateRepository struct {
	mock.Mock
}

func (m *MockCandidateRepository) WithTx(pgx.Tx) storage.CandidateRepository { return m }

func (m *MockCandidateRepository) Create(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) Update(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCandidateRepository) ReplaceSkills(ctx context.Context, candidateID int64, skillIDs []int64) error {
	return m.Called(ctx, candidateID, skillIDs).Error(0)
}

func (m *MockCandidateRepository) ReplacePositions(ctx context.Context, candidateID int64, positionIDs []int64) error {
	return m.Called(ctx, candidateID, positionIDs).Error(0)
}

func (m *MockCandidateRepository) List(ctx context.Context, filter storage.CandidateFilter) ([]models.Candidate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) Count(ctx context.Context, filter storage.CandidateFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

var _ storage.CandidateRepository = (*MockCandidateRepository)(nil)

// MockInterviewRepository is a mock type for the storage.InterviewRepository interface
type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) WithTx(pgx.Tx) storage.InterviewRepository { return m }

func (m *MockInterviewRepository) Create(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	args := m.Called(ctx, iv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Update(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	args := m.Called(ctx, iv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) SlotTaken(ctx context.Context, candidateID int64, date, startTime, endTime string) (bool, error) {
	args := m.Called(ctx, candidateID, date, startTime, endTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockInterviewRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) List(ctx context.Context, filter storage.InterviewFilter) ([]models.Interview, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Count(ctx context.Context, filter storage.InterviewFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockInterviewRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInterviewRepository) UpsertReview(ctx context.Context, interviewID int64, score *float64, feedback *string) (*models.Review, error) {
	args := m.Called(ctx, interviewID, score, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

var _ storage.InterviewRepository = (*MockInterviewRepository)(nil)

// MockReferenceResolver is a mock type for the storage.ReferenceResolver interface
type MockReferenceResolver struct {
	mock.Mock
}

func (m *MockReferenceResolver) WithTx(pgx.Tx) storage.ReferenceResolver { return m }

func (m *MockReferenceResolver) ResolveSkills(ctx context.Context, names []string) ([]storage.Resolved[models.Skill], error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Resolved[models.Skill]), args.Error(1)
}

func (m *MockReferenceResolver) ResolvePositions(ctx context.Context, names []string) ([]storage.Resolved[models.Position], error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Resolved[models.Position]), args.Error(1)
}

func (m *MockReferenceResolver) ResolveRound(ctx context.Context, name string) (storage.Resolved[models.InterviewRound], error) {
	args := m.Called(ctx, name)
	return args.Get(0).(storage.Resolved[models.InterviewRound]), args.Error(1)
}

var _ storage.ReferenceResolver = (*MockReferenceResolver)(nil)

// MockSkillRepository is a mock type for the storage.SkillRepository interface
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) List(ctx context.Context, params storage.ListParams) ([]models.Skill, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Count(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

func (m *MockSkillRepository) Update(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ storage.SkillRepository = (*MockSkillRepository)(nil)
