package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hrm-api/internal/models"
	"hrm-api/internal/storage"
	"hrm-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

const (
	msgCandidateNotFound  = "Candidate not found"
	msgCandidateDuplicate = "Candidate with this email already exists"
)

type candidateService struct {
	tx       storage.Transactor
	repo     storage.CandidateRepository
	resolver storage.ReferenceResolver
}

// NewCandidateService creates a new instance of CandidateService.
func NewCandidateService(tx storage.Transactor, repo storage.CandidateRepository, resolver storage.ReferenceResolver) CandidateService {
	return &candidateService{tx: tx, repo: repo, resolver: resolver}
}

func candidateFromRequest(req *dto.CandidateRequest) *models.Candidate {
	education := make([]string, 0, len(req.Education))
	for _, e := range req.Education {
		education = append(education, strings.TrimSpace(e))
	}
	return &models.Candidate{
		ID:                req.ID,
		AddBy:             strings.TrimSpace(req.AddBy),
		FullName:          strings.TrimSpace(req.FullName),
		Email:             normalizeEmail(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		TotalExperience:   req.TotalExperience,
		CurrentSalary:     req.CurrentSalary,
		ExpectedSalary:    req.ExpectedSalary,
		Notes:             req.Notes,
		Education:         education,
		PreviousCompanies: optionalString(req.PreviousCompanies),
		Availability:      optionalString(req.Availability),
	}
}

// AddCandidate stores a new candidate and links its skills and positions,
// creating reference rows for names seen for the first time.
func (s *candidateService) AddCandidate(ctx context.Context, req *dto.CandidateRequest) (*models.Candidate, error) {
	var out *models.Candidate
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.Create(ctx, candidateFromRequest(req))
		if err != nil {
			return err
		}
		if err := s.linkReferences(ctx, tx, created.ID, req.Skills, req.AppliedPosition); err != nil {
			return err
		}
		out, err = repo.GetByID(ctx, created.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, mapRepoError(err, msgCandidateDuplicate)
		}
		return nil, internalError(ctx, "add candidate", err)
	}
	slog.InfoContext(ctx, "candidate added", "candidate_id", out.ID, "skills", len(out.Skills), "positions", len(out.AppliedPositions))
	return out, nil
}

// UpdateCandidate replaces every field of an existing candidate, including
// its skill and position links.
func (s *candidateService) UpdateCandidate(ctx context.Context, req *dto.CandidateRequest) (*models.Candidate, error) {
	var out *models.Candidate
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)
		updated, err := repo.Update(ctx, candidateFromRequest(req))
		if err != nil {
			return err
		}
		if err := s.linkReferences(ctx, tx, updated.ID, req.Skills, req.AppliedPosition); err != nil {
			return err
		}
		out, err = repo.GetByID(ctx, updated.ID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateEmail):
			return nil, mapRepoError(err, msgCandidateDuplicate)
		case errors.Is(err, storage.ErrNotFound):
			return nil, mapRepoError(err, msgCandidateNotFound)
		}
		return nil, internalError(ctx, "update candidate", err)
	}
	return out, nil
}

func (s *candidateService) linkReferences(ctx context.Context, tx pgx.Tx, candidateID int64, skillNames, positionNames []string) error {
	resolver := s.resolver.WithTx(tx)
	repo := s.repo.WithTx(tx)

	skills, err := resolver.ResolveSkills(ctx, skillNames)
	if err != nil {
		return err
	}
	positions, err := resolver.ResolvePositions(ctx, positionNames)
	if err != nil {
		return err
	}
	if n := storage.CreatedCount(skills) + storage.CreatedCount(positions); n > 0 {
		slog.InfoContext(ctx, "reference data created from candidate",
			"candidate_id", candidateID,
			"skills_created", storage.CreatedCount(skills),
			"positions_created", storage.CreatedCount(positions),
		)
	}

	skillIDs := make([]int64, 0, len(skills))
	for _, sk := range storage.Values(skills) {
		skillIDs = append(skillIDs, sk.ID)
	}
	positionIDs := make([]int64, 0, len(positions))
	for _, p := range storage.Values(positions) {
		positionIDs = append(positionIDs, p.ID)
	}
	if err := repo.ReplaceSkills(ctx, candidateID, skillIDs); err != nil {
		return err
	}
	return repo.ReplacePositions(ctx, candidateID, positionIDs)
}

func (s *candidateService) GetCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, msgCandidateNotFound)
		}
		return nil, internalError(ctx, "get candidate", err)
	}
	return c, nil
}

// DeleteCandidate removes the candidate; interviews, reviews and links go with it.
func (s *candidateService) DeleteCandidate(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mapRepoError(err, msgCandidateNotFound)
		}
		return internalError(ctx, "delete candidate", err)
	}
	slog.InfoContext(ctx, "candidate deleted", "candidate_id", id)
	return nil
}

func (s *candidateService) FilterCandidates(ctx context.Context, q *dto.CandidateFilterQuery) (*Page[models.Candidate], error) {
	page, limit, offset := pageBounds(q.Page, q.Limit)
	filter := storage.CandidateFilter{
		Search:    strings.TrimSpace(q.Search),
		Skills:    splitList(q.Skills, q.Skill),
		Positions: splitList(q.Position),
		Limit:     limit,
		Offset:    offset,
	}
	return s.list(ctx, "filter candidates", page, filter)
}

// PaginateSearchable lists candidates matching search against the full name only.
func (s *candidateService) PaginateSearchable(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Candidate], error) {
	page, limit, offset := pageBounds(q.Page, q.Limit)
	filter := storage.CandidateFilter{
		Search:   strings.TrimSpace(q.Search),
		NameOnly: true,
		Limit:    limit,
		Offset:   offset,
	}
	return s.list(ctx, "paginate candidates", page, filter)
}

func (s *candidateService) list(ctx context.Context, op string, page int, filter storage.CandidateFilter) (*Page[models.Candidate], error) {
	res, err := listPage(ctx, page, filter.Limit, filter.Offset,
		func(ctx context.Context) ([]models.Candidate, error) { return s.repo.List(ctx, filter) },
		func(ctx context.Context) (int, error) { return s.repo.Count(ctx, filter) },
	)
	if err != nil {
		return nil, internalError(ctx, op, err)
	}
	return res, nil
}
