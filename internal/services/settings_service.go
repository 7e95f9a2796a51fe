package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hrm-api/internal/models"
	"hrm-api/internal/storage"
	"hrm-api/internal/transport/dto"
)

// referenceRepo is the method set shared by the settings repositories.
type referenceRepo[T any] interface {
	Create(ctx context.Context, v *T) (*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, params storage.ListParams) ([]T, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, v *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// referenceCRUD implements the settings operations for one entity kind.
// label is used in client messages, e.g. "Skill".
type referenceCRUD[T any] struct {
	repo  referenceRepo[T]
	label string
}

func (c referenceCRUD[T]) mapErr(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return mapRepoError(err, c.label+" not found")
	case errors.Is(err, storage.ErrConflict):
		return mapRepoError(err, c.label+" already exists")
	}
	return internalError(ctx, op, err)
}

func (c referenceCRUD[T]) create(ctx context.Context, v *T) (*T, error) {
	out, err := c.repo.Create(ctx, v)
	if err != nil {
		return nil, c.mapErr(ctx, "create "+strings.ToLower(c.label), err)
	}
	return out, nil
}

func (c referenceCRUD[T]) get(ctx context.Context, id int64) (*T, error) {
	out, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, c.mapErr(ctx, "get "+strings.ToLower(c.label), err)
	}
	return out, nil
}

func (c referenceCRUD[T]) list(ctx context.Context, q *dto.PaginationQuery) (*Page[T], error) {
	page, limit, offset := pageBounds(q.Page, q.Limit)
	search := strings.TrimSpace(q.Search)
	res, err := listPage(ctx, page, limit, offset,
		func(ctx context.Context) ([]T, error) {
			return c.repo.List(ctx, storage.ListParams{Search: search, Limit: limit, Offset: offset})
		},
		func(ctx context.Context) (int, error) { return c.repo.Count(ctx, search) },
	)
	if err != nil {
		return nil, internalError(ctx, "list "+strings.ToLower(c.label), err)
	}
	return res, nil
}

func (c referenceCRUD[T]) update(ctx context.Context, v *T) (*T, error) {
	out, err := c.repo.Update(ctx, v)
	if err != nil {
		return nil, c.mapErr(ctx, "update "+strings.ToLower(c.label), err)
	}
	return out, nil
}

func (c referenceCRUD[T]) delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return c.mapErr(ctx, "delete "+strings.ToLower(c.label), err)
	}
	slog.InfoContext(ctx, "settings entry deleted", "kind", c.label, "id", id)
	return nil
}

type skillService struct {
	crud referenceCRUD[models.Skill]
}

// NewSkillService creates a new instance of SkillService.
func NewSkillService(repo storage.SkillRepository) SkillService {
	return &skillService{crud: referenceCRUD[models.Skill]{repo: repo, label: "Skill"}}
}

func skillFromRequest(req *dto.SkillRequest) *models.Skill {
	return &models.Skill{
		ID:       req.ID,
		Name:     strings.TrimSpace(req.Name),
		Category: strings.TrimSpace(req.Category),
	}
}

func (s *skillService) Create(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error) {
	return s.crud.create(ctx, skillFromRequest(req))
}

func (s *skillService) Get(ctx context.Context, id int64) (*models.Skill, error) {
	return s.crud.get(ctx, id)
}

func (s *skillService) List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Skill], error) {
	return s.crud.list(ctx, q)
}

func (s *skillService) Update(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error) {
	return s.crud.update(ctx, skillFromRequest(req))
}

func (s *skillService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}

type positionService struct {
	crud referenceCRUD[models.Position]
}

// NewPositionService creates a new instance of PositionService.
func NewPositionService(repo storage.PositionRepository) PositionService {
	return &positionService{crud: referenceCRUD[models.Position]{repo: repo, label: "Position"}}
}

func positionFromRequest(req *dto.PositionRequest) *models.Position {
	return &models.Position{
		ID:         req.ID,
		Name:       strings.TrimSpace(req.Name),
		Department: strings.TrimSpace(req.Department),
		Level:      req.Level,
	}
}

func (s *positionService) Create(ctx context.Context, req *dto.PositionRequest) (*models.Position, error) {
	return s.crud.create(ctx, positionFromRequest(req))
}

func (s *positionService) Get(ctx context.Context, id int64) (*models.Position, error) {
	return s.crud.get(ctx, id)
}

func (s *positionService) List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.Position], error) {
	return s.crud.list(ctx, q)
}

func (s *positionService) Update(ctx context.Context, req *dto.PositionRequest) (*models.Position, error) {
	return s.crud.update(ctx, positionFromRequest(req))
}

func (s *positionService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}

type interviewRoundService struct {
	crud referenceCRUD[models.InterviewRound]
}

// NewInterviewRoundService creates a new instance of InterviewRoundService.
func NewInterviewRoundService(repo storage.InterviewRoundRepository) InterviewRoundService {
	return &interviewRoundService{crud: referenceCRUD[models.InterviewRound]{repo: repo, label: "Interview round"}}
}

func roundFromRequest(req *dto.InterviewRoundRequest) *models.InterviewRound {
	return &models.InterviewRound{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
}

func (s *interviewRoundService) Create(ctx context.Context, req *dto.InterviewRoundRequest) (*models.InterviewRound, error) {
	return s.crud.create(ctx, roundFromRequest(req))
}

func (s *interviewRoundService) Get(ctx context.Context, id int64) (*models.InterviewRound, error) {
	return s.crud.get(ctx, id)
}

func (s *interviewRoundService) List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.InterviewRound], error) {
	return s.crud.list(ctx, q)
}

func (s *interviewRoundService) Update(ctx context.Context, req *dto.InterviewRoundRequest) (*models.InterviewRound, error) {
	return s.crud.update(ctx, roundFromRequest(req))
}

func (s *interviewRoundService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}
