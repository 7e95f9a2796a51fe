package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hrm-api/internal/daterange"
	"hrm-api/internal/models"
	"hrm-api/internal/storage"
	"hrm-api/internal/timeconv"
	"hrm-api/internal/transport/dto"
	"hrm-api/internal/validation"

	"github.com/jackc/pgx/v5"
)

const (
	msgInterviewNotFound  = "Interview not found"
	msgInterviewScheduled = "Interview already scheduled"
)

type interviewService struct {
	tx         storage.Transactor
	repo       storage.InterviewRepository
	candidates storage.CandidateRepository
	resolver   storage.ReferenceResolver
	ranges     *daterange.Resolver
}

// NewInterviewService creates a new instance of InterviewService. ranges
// resolves dateRange presets against its own clock.
func NewInterviewService(
	tx storage.Transactor,
	repo storage.InterviewRepository,
	candidates storage.CandidateRepository,
	resolver storage.ReferenceResolver,
	ranges *daterange.Resolver,
) InterviewService {
	if ranges == nil {
		ranges = daterange.NewResolver(nil)
	}
	return &interviewService{tx: tx, repo: repo, candidates: candidates, resolver: resolver, ranges: ranges}
}

// interviewFromRequest converts the 12-hour request times to storage form.
func interviewFromRequest(req *dto.InterviewRequest) (*models.Interview, error) {
	start, err := timeconv.To24(req.StartTime)
	if err != nil {
		return nil, newValidationError("startTime", "startTime must be a time like 2:00 PM")
	}
	end, err := timeconv.To24(req.EndTime)
	if err != nil {
		return nil, newValidationError("endTime", "endTime must be a time like 2:00 PM")
	}
	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	return &models.Interview{
		ID:             req.ID,
		Interviewer:    strings.TrimSpace(req.Interviewer),
		CandidateID:    req.CandidateID,
		Date:           req.Date,
		StartTime:      start,
		EndTime:        end,
		InterviewRound: strings.TrimSpace(req.InterviewRound),
		Status:         status,
		MeetingLink:    optionalString(req.MeetingLink),
	}, nil
}

// ScheduleInterview creates an interview unless the candidate already has one
// in the exact same slot. Any review on the request is ignored.
func (s *interviewService) ScheduleInterview(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error) {
	iv, err := interviewFromRequest(req)
	if err != nil {
		return nil, err
	}

	var out *models.Interview
	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.requireCandidate(ctx, tx, iv.CandidateID); err != nil {
			return err
		}
		if err := s.resolveRound(ctx, tx, iv); err != nil {
			return err
		}
		repo := s.repo.WithTx(tx)
		taken, err := repo.SlotTaken(ctx, iv.CandidateID, iv.Date, iv.StartTime, iv.EndTime)
		if err != nil {
			return err
		}
		if taken {
			return storage.ErrConflict
		}
		out, err = repo.Create(ctx, iv)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			return nil, mapRepoError(err, msgInterviewScheduled)
		case errors.Is(err, storage.ErrNotFound):
			return nil, mapRepoError(err, msgCandidateNotFound)
		}
		return nil, internalError(ctx, "schedule interview", err)
	}
	slog.InfoContext(ctx, "interview scheduled",
		"interview_id", out.ID, "candidate_id", out.CandidateID, "date", out.Date, "round", out.InterviewRound)
	return out, nil
}

// UpdateInterview overwrites the interview and, when the request carries a
// review, creates or updates the interview's single review.
func (s *interviewService) UpdateInterview(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error) {
	iv, err := interviewFromRequest(req)
	if err != nil {
		return nil, err
	}

	var out *models.Interview
	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, iv.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return mapRepoError(err, msgInterviewNotFound)
			}
			return err
		}
		if err := s.requireCandidate(ctx, tx, iv.CandidateID); err != nil {
			return mapRepoError(err, msgCandidateNotFound)
		}
		if err := s.resolveRound(ctx, tx, iv); err != nil {
			return err
		}
		if _, err := repo.Update(ctx, iv); err != nil {
			return err
		}
		if score, feedback, ok := reviewFields(req.Review); ok {
			if _, err := repo.UpsertReview(ctx, iv.ID, score, feedback); err != nil {
				return err
			}
		}
		out, err = repo.GetByID(ctx, iv.ID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, err
		case errors.Is(err, storage.ErrNotFound):
			return nil, mapRepoError(err, msgInterviewNotFound)
		}
		return nil, internalError(ctx, "update interview", err)
	}
	slog.InfoContext(ctx, "interview updated",
		"interview_id", out.ID, "status", out.Status, "reviewed", out.Review != nil)
	return out, nil
}

// reviewFields reports whether the request carries a review worth storing.
// An empty review leaves any existing one untouched.
func reviewFields(r *dto.ReviewRequest) (*float64, *string, bool) {
	if r == nil {
		return nil, nil, false
	}
	feedback := trimmedPtr(r.Feedback)
	if feedback != nil && *feedback == "" {
		feedback = nil
	}
	if r.Score == nil && feedback == nil {
		return nil, nil, false
	}
	return r.Score, feedback, true
}

func (s *interviewService) requireCandidate(ctx context.Context, tx pgx.Tx, id int64) error {
	ok, err := s.candidates.WithTx(tx).Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNotFound
	}
	return nil
}

// resolveRound makes sure the round name exists as a settings entry.
func (s *interviewService) resolveRound(ctx context.Context, tx pgx.Tx, iv *models.Interview) error {
	round, err := s.resolver.WithTx(tx).ResolveRound(ctx, iv.InterviewRound)
	if err != nil {
		return err
	}
	if round.Outcome == storage.Created {
		slog.InfoContext(ctx, "interview round created", "round_id", round.Value.ID, "name", round.Value.Name)
	}
	return nil
}

func (s *interviewService) GetInterview(ctx context.Context, id int64) (*models.Interview, error) {
	iv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, msgInterviewNotFound)
		}
		return nil, internalError(ctx, "get interview", err)
	}
	return iv, nil
}

func (s *interviewService) ListInterviews(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Interview], error) {
	page, limit, offset := pageBounds(q.Page, q.Limit)
	return s.list(ctx, "list interviews", page, storage.InterviewFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  limit,
		Offset: offset,
	})
}

// ListInterviewsByCandidate returns every interview of an existing candidate.
func (s *interviewService) ListInterviewsByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error) {
	ok, err := s.candidates.Exists(ctx, candidateID)
	if err != nil {
		return nil, internalError(ctx, "list candidate interviews", err)
	}
	if !ok {
		return nil, mapRepoError(storage.ErrNotFound, msgCandidateNotFound)
	}
	interviews, err := s.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, internalError(ctx, "list candidate interviews", err)
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	return interviews, nil
}

// DeleteInterview removes the interview and its review.
func (s *interviewService) DeleteInterview(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mapRepoError(err, msgInterviewNotFound)
		}
		return internalError(ctx, "delete interview", err)
	}
	slog.InfoContext(ctx, "interview deleted", "interview_id", id)
	return nil
}

// FilterInterviews lists interviews narrowed by search, status set, round set
// and a named date range.
func (s *interviewService) FilterInterviews(ctx context.Context, q *dto.InterviewFilterQuery) (*Page[models.Interview], error) {
	page, limit, offset := pageBounds(q.Page, q.Limit)
	filter := storage.InterviewFilter{
		Search: strings.TrimSpace(q.Search),
		Rounds: splitList(q.Round),
		Limit:  limit,
		Offset: offset,
	}

	var problems ValidationError
	for _, raw := range splitList(q.Status) {
		st := models.InterviewStatus(strings.ToLower(raw))
		if !st.IsValid() {
			problems.Fields = append(problems.Fields, fieldError("status", "status must be one of pending, passed, failed"))
			break
		}
		filter.Statuses = append(filter.Statuses, st)
	}
	if preset := strings.TrimSpace(q.DateRange); preset != "" {
		r, err := s.ranges.Resolve(preset, strings.TrimSpace(q.StartDate), strings.TrimSpace(q.EndDate))
		if err != nil {
			problems.Fields = append(problems.Fields, dateRangeProblem(err))
		} else {
			filter.FromDate, filter.ToDate = r.FromDate(), r.ToDate()
		}
	}
	if len(problems.Fields) > 0 {
		return nil, &problems
	}
	return s.list(ctx, "filter interviews", page, filter)
}

func dateRangeProblem(err error) validation.FieldError {
	switch {
	case errors.Is(err, daterange.ErrUnknownPreset):
		return fieldError("dateRange", "dateRange must be one of today, yesterday, last-week, last-month, last-quarter, last-year, custom")
	case errors.Is(err, daterange.ErrCustomBounds):
		return fieldError("startDate", "startDate and endDate are required for a custom range")
	case errors.Is(err, daterange.ErrInvertedRange):
		return fieldError("startDate", "startDate must not be after endDate")
	}
	return fieldError("startDate", "dates must be in YYYY-MM-DD format")
}

func (s *interviewService) list(ctx context.Context, op string, page int, filter storage.InterviewFilter) (*Page[models.Interview], error) {
	res, err := listPage(ctx, page, filter.Limit, filter.Offset,
		func(ctx context.Context) ([]models.Interview, error) { return s.repo.List(ctx, filter) },
		func(ctx context.Context) (int, error) { return s.repo.Count(ctx, filter) },
	)
	if err != nil {
		return nil, internalError(ctx, op, err)
	}
	return res, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
