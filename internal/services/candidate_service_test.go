package services_test

import (
	"context"
	"errors"
	"testing"

	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/storage"
	"hrm-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type candidateTest struct {
	tx       *fakeTx
	repo     *MockCandidateRepository
	resolver *MockReferenceResolver
	service  services.CandidateService
}

func setupCandidateTest(t *testing.T) *candidateTest {
	t.Helper()
	ct := &candidateTest{
		tx:       &fakeTx{},
		repo:     new(MockCandidateRepository),
		resolver: new(MockReferenceResolver),
	}
	ct.service = services.NewCandidateService(ct.tx, ct.repo, ct.resolver)
	t.Cleanup(func() {
		ct.repo.AssertExpectations(t)
		ct.resolver.AssertExpectations(t)
	})
	return ct
}

func candidateRequest() *dto.CandidateRequest {
	return &dto.CandidateRequest{
		AddBy:           "hr@example.com",
		FullName:        " Jane Doe ",
		Email:           "Jane@Example.com",
		Phone:           "5551234567",
		TotalExperience: 4,
		Education:       []string{" BSc Computer Science "},
		Skills:          []string{"Go", "go", "SQL"},
		AppliedPosition: []string{"Backend Engineer"},
	}
}

func resolvedSkills() []storage.Resolved[models.Skill] {
	return []storage.Resolved[models.Skill]{
		{Value: models.Skill{ID: 1, Name: "Go"}, Outcome: storage.Found},
		{Value: models.Skill{ID: 2, Name: "SQL"}, Outcome: storage.Created},
	}
}

func resolvedPositions() []storage.Resolved[models.Position] {
	return []storage.Resolved[models.Position]{
		{Value: models.Position{ID: 9, Name: "Backend Engineer"}, Outcome: storage.Found},
	}
}

func TestCandidateService_AddCandidate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ct := setupCandidateTest(t)
		req := candidateRequest()

		ct.repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Candidate) bool {
			return c.FullName == "Jane Doe" && c.Email == "jane@example.com" &&
				c.Education[0] == "BSc Computer Science" && c.PreviousCompanies == nil
		})).Return(&models.Candidate{ID: 42}, nil).Once()
		ct.resolver.On("ResolveSkills", mock.Anything, req.Skills).Return(resolvedSkills(), nil).Once()
		ct.resolver.On("ResolvePositions", mock.Anything, req.AppliedPosition).Return(resolvedPositions(), nil).Once()
		ct.repo.On("ReplaceSkills", mock.Anything, int64(42), []int64{1, 2}).Return(nil).Once()
		ct.repo.On("ReplacePositions", mock.Anything, int64(42), []int64{9}).Return(nil).Once()
		ct.repo.On("GetByID", mock.Anything, int64(42)).Return(&models.Candidate{
			ID:               42,
			FullName:         "Jane Doe",
			Skills:           []models.Skill{{ID: 1, Name: "Go"}, {ID: 2, Name: "SQL"}},
			AppliedPositions: []models.Position{{ID: 9, Name: "Backend Engineer"}},
		}, nil).Once()

		c, err := ct.service.AddCandidate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(42), c.ID)
		assert.Len(t, c.Skills, 2)
		assert.Equal(t, 1, ct.tx.calls)
	})

	t.Run("Conflict - Duplicate Email", func(t *testing.T) {
		ct := setupCandidateTest(t)
		ct.repo.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()

		_, err := ct.service.AddCandidate(context.Background(), candidateRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrConflict)
		assert.Contains(t, err.Error(), "Candidate with this email already exists")
	})

	t.Run("Resolver Error Aborts", func(t *testing.T) {
		ct := setupCandidateTest(t)
		boom := errors.New("boom")
		ct.repo.On("Create", mock.Anything, mock.Anything).Return(&models.Candidate{ID: 42}, nil).Once()
		ct.resolver.On("ResolveSkills", mock.Anything, mock.Anything).Return(nil, boom).Once()

		_, err := ct.service.AddCandidate(context.Background(), candidateRequest())
		assert.ErrorIs(t, err, boom)
		ct.repo.AssertNotCalled(t, "ReplaceSkills", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCandidateService_UpdateCandidate(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		ct := setupCandidateTest(t)
		req := candidateRequest()
		req.ID = 8
		ct.repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Candidate) bool { return c.ID == 8 })).
			Return(nil, storage.ErrNotFound).Once()

		_, err := ct.service.UpdateCandidate(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Contains(t, err.Error(), "Candidate not found")
	})

	t.Run("Email Taken By Another Candidate", func(t *testing.T) {
		ct := setupCandidateTest(t)
		req := candidateRequest()
		req.ID = 8
		ct.repo.On("Update", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()

		_, err := ct.service.UpdateCandidate(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Success Replaces Links", func(t *testing.T) {
		ct := setupCandidateTest(t)
		req := candidateRequest()
		req.ID = 8
		ct.repo.On("Update", mock.Anything, mock.Anything).Return(&models.Candidate{ID: 8}, nil).Once()
		ct.resolver.On("ResolveSkills", mock.Anything, req.Skills).Return(resolvedSkills(), nil).Once()
		ct.resolver.On("ResolvePositions", mock.Anything, req.AppliedPosition).Return(resolvedPositions(), nil).Once()
		ct.repo.On("ReplaceSkills", mock.Anything, int64(8), []int64{1, 2}).Return(nil).Once()
		ct.repo.On("ReplacePositions", mock.Anything, int64(8), []int64{9}).Return(nil).Once()
		ct.repo.On("GetByID", mock.Anything, int64(8)).Return(&models.Candidate{ID: 8}, nil).Once()

		c, err := ct.service.UpdateCandidate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(8), c.ID)
	})
}

func TestCandidateService_FilterCandidates(t *testing.T) {
	ct := setupCandidateTest(t)
	want := storage.CandidateFilter{
		Search:    "jane",
		Skills:    []string{"Go", "SQL", "Docker"},
		Positions: []string{"Backend Engineer"},
		Limit:     5,
		Offset:    5,
	}
	ct.repo.On("List", mock.Anything, want).Return(nil, nil).Once()
	ct.repo.On("Count", mock.Anything, want).Return(7, nil).Once()

	page, err := ct.service.FilterCandidates(context.Background(), &dto.CandidateFilterQuery{
		Page:     2,
		Limit:    5,
		Search:   "jane",
		Skills:   "Go, SQL",
		Skill:    "Docker",
		Position: "Backend Engineer",
	})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 7, page.Total)
	assert.Nil(t, page.NextPage)
}

func TestCandidateService_PaginateSearchable(t *testing.T) {
	ct := setupCandidateTest(t)
	matchNameOnly := mock.MatchedBy(func(f storage.CandidateFilter) bool {
		return f.NameOnly && f.Search == "doe" && f.Limit == 100 && f.Offset == 0
	})
	ct.repo.On("List", mock.Anything, matchNameOnly).Return([]models.Candidate{{ID: 1}}, nil).Once()
	ct.repo.On("Count", mock.Anything, matchNameOnly).Return(101, nil).Once()

	page, err := ct.service.PaginateSearchable(context.Background(), &dto.PaginationQuery{Limit: 500, Search: "doe"})
	require.NoError(t, err)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 2, *page.NextPage)
}

func TestCandidateService_GetAndDelete(t *testing.T) {
	ct := setupCandidateTest(t)
	ct.repo.On("GetByID", mock.Anything, int64(1)).Return(nil, storage.ErrNotFound).Once()
	ct.repo.On("Delete", mock.Anything, int64(2)).Return(nil).Once()

	_, err := ct.service.GetCandidate(context.Background(), 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NoError(t, ct.service.DeleteCandidate(context.Background(), 2))
}
