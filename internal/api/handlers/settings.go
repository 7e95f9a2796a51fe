package handlers

import (
	"context"
	"net/http"

	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// settingsService is the CRUD surface shared by skills, positions and rounds.
type settingsService[Req, M any] interface {
	Create(ctx context.Context, req *Req) (*M, error)
	Get(ctx context.Context, id int64) (*M, error)
	List(ctx context.Context, q *dto.PaginationQuery) (*services.Page[M], error)
	Update(ctx context.Context, req *Req) (*M, error)
	Delete(ctx context.Context, id int64) error
}

// settingsCRUD implements the five settings endpoints for one entity.
type settingsCRUD[Req, M any] struct {
	service   settingsService[Req, M]
	validator *validator.Validate
	label     string
	setID     func(req *Req, id int64)
}

func (h *settingsCRUD[Req, M]) add(c *gin.Context) {
	var req Req
	if !bindJSON(c, h.validator, &req) {
		return
	}
	out, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse[*M]{Message: h.label + " added successfully", Data: out})
}

func (h *settingsCRUD[Req, M]) list(c *gin.Context) {
	var q dto.PaginationQuery
	if !bindQuery(c, h.validator, &q) {
		return
	}
	page, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(page, identity[M]))
}

func (h *settingsCRUD[Req, M]) get(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	out, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[*M]{Data: out})
}

func (h *settingsCRUD[Req, M]) update(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	var req Req
	if !bindJSON(c, h.validator, &req) {
		return
	}
	h.setID(&req, id)
	out, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[*M]{Message: h.label + " updated successfully", Data: out})
}

func (h *settingsCRUD[Req, M]) delete(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.label + " deleted successfully"})
}

// SkillHandler serves /skills.
type SkillHandler struct {
	crud settingsCRUD[dto.SkillRequest, models.Skill]
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service services.SkillService, validate *validator.Validate) *SkillHandler {
	return &SkillHandler{crud: settingsCRUD[dto.SkillRequest, models.Skill]{
		service:   service,
		validator: validate,
		label:     "Skill",
		setID:     func(r *dto.SkillRequest, id int64) { r.ID = id },
	}}
}

// AddSkill godoc
// @Summary      Add a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill body      dto.SkillRequest true  "Skill"
// @Success      201 {object}  dto.DataResponse[models.Skill]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse "Skill already exists"
// @Router       /skills/add-skill [post]
// @Security     BearerAuth
func (h *SkillHandler) AddSkill(c *gin.Context) { h.crud.add(c) }

// GetSkills godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(10)
// @Param        search query string false "Name substring"
// @Success      200 {object}  dto.ListResponse[models.Skill]
// @Router       /skills/get-skill [get]
// @Security     BearerAuth
func (h *SkillHandler) GetSkills(c *gin.Context) { h.crud.list(c) }

// GetSkillByID godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id path int true "Skill ID"
// @Success      200 {object}  dto.DataResponse[models.Skill]
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /skills/get-skills-by-id/{id} [get]
// @Security     BearerAuth
func (h *SkillHandler) GetSkillByID(c *gin.Context) { h.crud.get(c) }

// UpdateSkill godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path int              true "Skill ID"
// @Param        skill body dto.SkillRequest true "Skill"
// @Success      200 {object}  dto.DataResponse[models.Skill]
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse
// @Router       /skills/update-skill/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) UpdateSkill(c *gin.Context) { h.crud.update(c) }

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id path int true "Skill ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /skills/delete-skill/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) DeleteSkill(c *gin.Context) { h.crud.delete(c) }

// PositionHandler serves /positions.
type PositionHandler struct {
	crud settingsCRUD[dto.PositionRequest, models.Position]
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(service services.PositionService, validate *validator.Validate) *PositionHandler {
	return &PositionHandler{crud: settingsCRUD[dto.PositionRequest, models.Position]{
		service:   service,
		validator: validate,
		label:     "Position",
		setID:     func(r *dto.PositionRequest, id int64) { r.ID = id },
	}}
}

// AddPosition godoc
// @Summary      Add a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        position body      dto.PositionRequest true  "Position"
// @Success      201 {object}  dto.DataResponse[models.Position]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse "Position already exists"
// @Router       /positions/add-position [post]
// @Security     BearerAuth
func (h *PositionHandler) AddPosition(c *gin.Context) { h.crud.add(c) }

// GetPositions godoc
// @Summary      List positions
// @Tags         positions
// @Produce      json
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(10)
// @Param        search query string false "Name substring"
// @Success      200 {object}  dto.ListResponse[models.Position]
// @Router       /positions/get-position [get]
// @Security     BearerAuth
func (h *PositionHandler) GetPositions(c *gin.Context) { h.crud.list(c) }

// GetPositionByID godoc
// @Summary      Get a position
// @Tags         positions
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      200 {object}  dto.DataResponse[models.Position]
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /positions/get-positions-by-id/{id} [get]
// @Security     BearerAuth
func (h *PositionHandler) GetPositionByID(c *gin.Context) { h.crud.get(c) }

// UpdatePosition godoc
// @Summary      Update a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id       path int                 true "Position ID"
// @Param        position body dto.PositionRequest true "Position"
// @Success      200 {object}  dto.DataResponse[models.Position]
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse
// @Router       /positions/update-position/{id} [put]
// @Security     BearerAuth
func (h *PositionHandler) UpdatePosition(c *gin.Context) { h.crud.update(c) }

// DeletePosition godoc
// @Summary      Delete a position
// @Tags         positions
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /positions/delete-position/{id} [delete]
// @Security     BearerAuth
func (h *PositionHandler) DeletePosition(c *gin.Context) { h.crud.delete(c) }

// InterviewRoundHandler serves /interview-round.
type InterviewRoundHandler struct {
	crud settingsCRUD[dto.InterviewRoundRequest, models.InterviewRound]
}

// NewInterviewRoundHandler creates a new InterviewRoundHandler.
func NewInterviewRoundHandler(service services.InterviewRoundService, validate *validator.Validate) *InterviewRoundHandler {
	return &InterviewRoundHandler{crud: settingsCRUD[dto.InterviewRoundRequest, models.InterviewRound]{
		service:   service,
		validator: validate,
		label:     "Interview round",
		setID:     func(r *dto.InterviewRoundRequest, id int64) { r.ID = id },
	}}
}

// AddInterviewRound godoc
// @Summary      Add an interview round
// @Tags         interview-rounds
// @Accept       json
// @Produce      json
// @Param        round body      dto.InterviewRoundRequest true  "Interview round"
// @Success      201 {object}  dto.DataResponse[models.InterviewRound]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse "Interview round already exists"
// @Router       /interview-round/add-interview-round [post]
// @Security     BearerAuth
func (h *InterviewRoundHandler) AddInterviewRound(c *gin.Context) { h.crud.add(c) }

// GetInterviewRounds godoc
// @Summary      List interview rounds
// @Tags         interview-rounds
// @Produce      json
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(10)
// @Param        search query string false "Name substring"
// @Success      200 {object}  dto.ListResponse[models.InterviewRound]
// @Router       /interview-round/get-interview-round [get]
// @Security     BearerAuth
func (h *InterviewRoundHandler) GetInterviewRounds(c *gin.Context) { h.crud.list(c) }

// GetInterviewRoundByID godoc
// @Summary      Get an interview round
// @Tags         interview-rounds
// @Produce      json
// @Param        id path int true "Interview round ID"
// @Success      200 {object}  dto.DataResponse[models.InterviewRound]
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /interview-round/get-interview-round-by-id/{id} [get]
// @Security     BearerAuth
func (h *InterviewRoundHandler) GetInterviewRoundByID(c *gin.Context) { h.crud.get(c) }

// UpdateInterviewRound godoc
// @Summary      Update an interview round
// @Tags         interview-rounds
// @Accept       json
// @Produce      json
// @Param        id    path int                       true "Interview round ID"
// @Param        round body dto.InterviewRoundRequest true "Interview round"
// @Success      200 {object}  dto.DataResponse[models.InterviewRound]
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse
// @Router       /interview-round/update-interview-round/{id} [put]
// @Security     BearerAuth
func (h *InterviewRoundHandler) UpdateInterviewRound(c *gin.Context) { h.crud.update(c) }

// DeleteInterviewRound godoc
// @Summary      Delete an interview round
// @Tags         interview-rounds
// @Produce      json
// @Param        id path int true "Interview round ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /interview-round/delete-interview-round/{id} [delete]
// @Security     BearerAuth
func (h *InterviewRoundHandler) DeleteInterviewRound(c *gin.Context) { h.crud.delete(c) }
