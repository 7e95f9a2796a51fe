package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrm-api/internal/daterange"
	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/storage"
	"hrm-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type interviewTest struct {
	tx         *fakeTx
	repo       *MockInterviewRepository
	candidates *MockCandidateRepository
	resolver   *MockReferenceResolver
	service    services.InterviewService
}

func setupInterviewTest(t *testing.T) *interviewTest {
	t.Helper()
	now := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)
	it := &interviewTest{
		tx:         &fakeTx{},
		repo:       new(MockInterviewRepository),
		candidates: new(MockCandidateRepository),
		resolver:   new(MockReferenceResolver),
	}
	it.service = services.NewInterviewService(it.tx, it.repo, it.candidates, it.resolver,
		daterange.NewResolver(func() time.Time { return now }))
	t.Cleanup(func() {
		it.repo.AssertExpectations(t)
		it.candidates.AssertExpectations(t)
		it.resolver.AssertExpectations(t)
	})
	return it
}

func scheduleRequest() *dto.InterviewRequest {
	return &dto.InterviewRequest{
		Interviewer:    "Ann Smith",
		CandidateID:    7,
		Date:           "2024-02-01",
		StartTime:      "2:00 PM",
		EndTime:        "3:00 pm",
		InterviewRound: " Technical ",
	}
}

func technicalRound(outcome storage.Outcome) storage.Resolved[models.InterviewRound] {
	return storage.Resolved[models.InterviewRound]{
		Value:   models.InterviewRound{ID: 1, Name: "Technical", Description: models.DefaultRoundDescription},
		Outcome: outcome,
	}
}

func TestInterviewService_ScheduleInterview(t *testing.T) {
	dbDown := errors.New("connection reset")

	tests := []struct {
		name          string
		setup         func(it *interviewTest)
		expectedError error
		errorContains string
	}{
		{
			name: "Success",
			setup: func(it *interviewTest) {
				it.candidates.On("Exists", mock.Anything, int64(7)).Return(true, nil).Once()
				it.resolver.On("ResolveRound", mock.Anything, "Technical").Return(technicalRound(storage.Created), nil).Once()
				it.repo.On("SlotTaken", mock.Anything, int64(7), "2024-02-01", "14:00:00", "15:00:00").Return(false, nil).Once()
				it.repo.On("Create", mock.Anything, mock.MatchedBy(func(iv *models.Interview) bool {
					return iv.Status == models.StatusPending &&
						iv.StartTime == "14:00:00" && iv.EndTime == "15:00:00" &&
						iv.InterviewRound == "Technical" && iv.MeetingLink == nil
				})).Return(&models.Interview{
					ID: 11, CandidateID: 7, Date: "2024-02-01", StartTime: "14:00:00", EndTime: "15:00:00",
					InterviewRound: "Technical", Status: models.StatusPending,
				}, nil).Once()
			},
		},
		{
			name: "Conflict - Slot Already Taken",
			setup: func(it *interviewTest) {
				it.candidates.On("Exists", mock.Anything, int64(7)).Return(true, nil).Once()
				it.resolver.On("ResolveRound", mock.Anything, "Technical").Return(technicalRound(storage.Found), nil).Once()
				it.repo.On("SlotTaken", mock.Anything, int64(7), "2024-02-01", "14:00:00", "15:00:00").Return(true, nil).Once()
			},
			expectedError: services.ErrConflict,
			errorContains: "Interview already scheduled",
		},
		{
			name: "Not Found - Candidate Missing",
			setup: func(it *interviewTest) {
				it.candidates.On("Exists", mock.Anything, int64(7)).Return(false, nil).Once()
			},
			expectedError: services.ErrNotFound,
			errorContains: "Candidate not found",
		},
		{
			name: "Repository Error",
			setup: func(it *interviewTest) {
				it.candidates.On("Exists", mock.Anything, int64(7)).Return(false, dbDown).Once()
			},
			expectedError: dbDown,
			errorContains: "internal error during schedule interview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := setupInterviewTest(t)
			tt.setup(it)

			iv, err := it.service.ScheduleInterview(context.Background(), scheduleRequest())

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, iv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), iv.ID)
			assert.Equal(t, models.StatusPending, iv.Status)
			assert.Equal(t, 1, it.tx.calls)
		})
	}
}

func TestInterviewService_ScheduleInterview_KeepsSuppliedStatusAndLink(t *testing.T) {
	it := setupInterviewTest(t)
	req := scheduleRequest()
	req.Status = models.StatusPassed
	req.MeetingLink = "https://meet.example.com/abc"
	req.Review = &dto.ReviewRequest{Feedback: ptr("ignored on create")}

	it.candidates.On("Exists", mock.Anything, int64(7)).Return(true, nil).Once()
	it.resolver.On("ResolveRound", mock.Anything, "Technical").Return(technicalRound(storage.Found), nil).Once()
	it.repo.On("SlotTaken", mock.Anything, int64(7), "2024-02-01", "14:00:00", "15:00:00").Return(false, nil).Once()
	it.repo.On("Create", mock.Anything, mock.MatchedBy(func(iv *models.Interview) bool {
		return iv.Status == models.StatusPassed && iv.MeetingLink != nil && *iv.MeetingLink == "https://meet.example.com/abc"
	})).Return(&models.Interview{ID: 12, Status: models.StatusPassed}, nil).Once()

	iv, err := it.service.ScheduleInterview(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPassed, iv.Status)
	it.repo.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInterviewService_ScheduleInterview_InvalidTime(t *testing.T) {
	it := setupInterviewTest(t)
	req := scheduleRequest()
	req.StartTime = "14:00"

	_, err := it.service.ScheduleInterview(context.Background(), req)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, "startTime", verr.Fields[0].Field)
	assert.Equal(t, 0, it.tx.calls)
}

func TestInterviewService_UpdateInterview(t *testing.T) {
	score := 7.5

	t.Run("Success - Attaches Review", func(t *testing.T) {
		it := setupInterviewTest(t)
		req := scheduleRequest()
		req.ID = 3
		req.Status = models.StatusPassed
		req.Review = &dto.ReviewRequest{Score: &score, Feedback: ptr("  solid fundamentals ")}

		existing := &models.Interview{ID: 3, CandidateID: 7, Status: models.StatusPending}
		updated := &models.Interview{
			ID: 3, CandidateID: 7, Status: models.StatusPassed,
			Review: &models.Review{ID: 1, InterviewID: 3, Score: &score, Feedback: ptr("solid fundamentals")},
		}
		it.repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil).Once()
		it.candidates.On("Exists", mock.Anything, int64(7)).Return(true, nil).Once()
		it.resolver.On("ResolveRound", mock.Anything, "Technical").Return(technicalRound(storage.Found), nil).Once()
		it.repo.On("Update", mock.Anything, mock.MatchedBy(func(iv *models.Interview) bool {
			return iv.ID == 3 && iv.Status == models.StatusPassed
		})).Return(existing, nil).Once()
		it.repo.On("UpsertReview", mock.Anything, int64(3), &score, ptr("solid fundamentals")).
			Return(updated.Review, nil).Once()
		it.repo.On("GetByID", mock.Anything, int64(3)).Return(updated, nil).Once()

		iv, err := it.service.UpdateInterview(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, iv.Review)
		assert.Equal(t, 7.5, *iv.Review.Score)
		assert.Equal(t, models.StatusPassed, iv.Status)
	})

	t.Run("Success - Without Review Leaves It Untouched", func(t *testing.T) {
		it := setupInterviewTest(t)
		req := scheduleRequest()
		req.ID = 3

		existing := &models.Interview{ID: 3, CandidateID: 7}
		it.repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil).Twice()
		it.candidates.On("Exists", mock.Anything, int64(7)).Return(true, nil).Once()
		it.resolver.On("ResolveRound", mock.Anything, "Technical").Return(technicalRound(storage.Found), nil).Once()
		it.repo.On("Update", mock.Anything, mock.Anything).Return(existing, nil).Once()

		_, err := it.service.UpdateInterview(context.Background(), req)
		require.NoError(t, err)
		it.repo.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Empty Review Is Not Stored", func(t *testing.T) {
		for _, review := range []*dto.ReviewRequest{{}, {Feedback: ptr("   ")}} {
			it := setupInterviewTest(t)
			req := scheduleRequest()
			req.ID = 3
			req.Review = review

			existing := &models.Interview{ID: 3, CandidateID: 7}
			it.repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil).Twice()
			it.candidates.On("Exists", mock.Anything, int64(7)).Return(true, nil).Once()
			it.resolver.On("ResolveRound", mock.Anything, "Technical").Return(technicalRound(storage.Found), nil).Once()
			it.repo.On("Update", mock.Anything, mock.Anything).Return(existing, nil).Once()

			iv, err := it.service.UpdateInterview(context.Background(), req)
			require.NoError(t, err)
			assert.Nil(t, iv.Review)
			it.repo.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Not Found - Interview Missing", func(t *testing.T) {
		it := setupInterviewTest(t)
		req := scheduleRequest()
		req.ID = 99
		it.repo.On("GetByID", mock.Anything, int64(99)).Return(nil, storage.ErrNotFound).Once()

		_, err := it.service.UpdateInterview(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Contains(t, err.Error(), "Interview not found")
	})

	t.Run("Not Found - Candidate Missing", func(t *testing.T) {
		it := setupInterviewTest(t)
		req := scheduleRequest()
		req.ID = 3
		it.repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Interview{ID: 3}, nil).Once()
		it.candidates.On("Exists", mock.Anything, int64(7)).Return(false, nil).Once()

		_, err := it.service.UpdateInterview(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Contains(t, err.Error(), "Candidate not found")
	})
}

func TestInterviewService_ListInterviewsByCandidate(t *testing.T) {
	t.Run("Unknown Candidate", func(t *testing.T) {
		it := setupInterviewTest(t)
		it.candidates.On("Exists", mock.Anything, int64(5)).Return(false, nil).Once()

		_, err := it.service.ListInterviewsByCandidate(context.Background(), 5)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("No Interviews Yields Empty Slice", func(t *testing.T) {
		it := setupInterviewTest(t)
		it.candidates.On("Exists", mock.Anything, int64(5)).Return(true, nil).Once()
		it.repo.On("ListByCandidate", mock.Anything, int64(5)).Return(nil, nil).Once()

		list, err := it.service.ListInterviewsByCandidate(context.Background(), 5)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestInterviewService_DeleteInterview(t *testing.T) {
	it := setupInterviewTest(t)
	it.repo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()
	it.repo.On("Delete", mock.Anything, int64(5)).Return(storage.ErrNotFound).Once()

	assert.NoError(t, it.service.DeleteInterview(context.Background(), 4))
	assert.ErrorIs(t, it.service.DeleteInterview(context.Background(), 5), services.ErrNotFound)
}

func TestInterviewService_FilterInterviews(t *testing.T) {
	t.Run("Builds Filter From Query", func(t *testing.T) {
		it := setupInterviewTest(t)
		want := storage.InterviewFilter{
			Search:   "ann",
			Statuses: []models.InterviewStatus{models.StatusPassed, models.StatusFailed},
			Rounds:   []string{"Technical", "HR"},
			FromDate: "2024-03-30",
			ToDate:   "2024-03-30",
			Limit:    10,
			Offset:   0,
		}
		it.repo.On("List", mock.Anything, want).Return([]models.Interview{{ID: 1}, {ID: 2}}, nil).Once()
		it.repo.On("Count", mock.Anything, want).Return(25, nil).Once()

		page, err := it.service.FilterInterviews(context.Background(), &dto.InterviewFilterQuery{
			Search:    " ann ",
			Status:    "passed,FAILED",
			Round:     "Technical, HR,",
			DateRange: "yesterday",
		})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 25, page.Total)
		require.NotNil(t, page.NextPage)
		assert.Equal(t, 2, *page.NextPage)
	})

	t.Run("Last Page Has No Next Page", func(t *testing.T) {
		it := setupInterviewTest(t)
		it.repo.On("List", mock.Anything, mock.Anything).Return([]models.Interview{{ID: 21}}, nil).Once()
		it.repo.On("Count", mock.Anything, mock.Anything).Return(21, nil).Once()

		page, err := it.service.FilterInterviews(context.Background(), &dto.InterviewFilterQuery{Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.Nil(t, page.NextPage)
		assert.Equal(t, 3, page.Page)
	})

	t.Run("Custom Range Bounds", func(t *testing.T) {
		it := setupInterviewTest(t)
		it.repo.On("List", mock.Anything, mock.MatchedBy(func(f storage.InterviewFilter) bool {
			return f.FromDate == "2024-01-01" && f.ToDate == "2024-01-31"
		})).Return([]models.Interview{}, nil).Once()
		it.repo.On("Count", mock.Anything, mock.Anything).Return(0, nil).Once()

		page, err := it.service.FilterInterviews(context.Background(), &dto.InterviewFilterQuery{
			DateRange: "custom", StartDate: "2024-01-01", EndDate: "2024-01-31",
		})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("Invalid Filters Are Reported Together", func(t *testing.T) {
		it := setupInterviewTest(t)

		_, err := it.service.FilterInterviews(context.Background(), &dto.InterviewFilterQuery{
			Status:    "pending,done",
			DateRange: "custom",
			StartDate: "2024-01-01",
		})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 2)
		assert.Equal(t, "status", verr.Fields[0].Field)
		assert.Equal(t, "startDate", verr.Fields[1].Field)
		it.repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Preset", func(t *testing.T) {
		it := setupInterviewTest(t)
		_, err := it.service.FilterInterviews(context.Background(), &dto.InterviewFilterQuery{DateRange: "next-week"})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "dateRange", verr.Fields[0].Field)
	})
}

func ptr[T any](v T) *T { return &v }
