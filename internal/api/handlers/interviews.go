package handlers

import (
	"net/http"

	"hrm-api/internal/services"
	"hrm-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InterviewHandler holds dependencies for interview operations.
type InterviewHandler struct {
	service   services.InterviewService
	validator *validator.Validate
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(service services.InterviewService, validate *validator.Validate) *InterviewHandler {
	return &InterviewHandler{service: service, validator: validate}
}

// AddInterview godoc
// @Summary      Schedule an interview
// @Description  Times use the 12-hour form, e.g. "2:00 PM". A candidate cannot have two interviews in the same slot.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview body      dto.InterviewRequest true  "Interview details"
// @Success      201 {object}  dto.DataResponse[dto.InterviewResponse]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse "Candidate not found"
// @Failure      409 {object}  dto.ErrorResponse "Interview already scheduled"
// @Router       /interview/add-interview [post]
// @Security     BearerAuth
func (h *InterviewHandler) AddInterview(c *gin.Context) {
	var req dto.InterviewRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	iv, err := h.service.ScheduleInterview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse[dto.InterviewResponse]{
		Message: "Interview scheduled successfully",
		Data:    MapInterviewModelToResponse(iv),
	})
}

// UpdateInterview godoc
// @Summary      Update an interview
// @Description  Replaces the interview. A review in the body is attached, updating any existing one.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id        path      int true  "Interview ID"
// @Param        interview body      dto.InterviewRequest true  "Interview details"
// @Success      200 {object}  dto.DataResponse[dto.InterviewResponse]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /interview/update-interview/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	var req dto.InterviewRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id
	iv, err := h.service.UpdateInterview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.InterviewResponse]{
		Message: "Interview updated successfully",
		Data:    MapInterviewModelToResponse(iv),
	})
}

// GetInterviews godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(10)
// @Param        search query string false "Candidate name, email or phone substring"
// @Success      200 {object}  dto.ListResponse[dto.InterviewResponse]
// @Router       /interview/get-interview [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetInterviews(c *gin.Context) {
	var q dto.PaginationQuery
	if !bindQuery(c, h.validator, &q) {
		return
	}
	page, err := h.service.ListInterviews(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(page, MapInterviewModelToResponse))
}

// GetInterviewByID godoc
// @Summary      Get an interview by ID
// @Tags         interviews
// @Produce      json
// @Param        id path int true "Interview ID"
// @Success      200 {object}  dto.DataResponse[dto.InterviewResponse]
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /interview/get-interview/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	iv, err := h.service.GetInterview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.InterviewResponse]{Data: MapInterviewModelToResponse(iv)})
}

// GetInterviewsByCandidate godoc
// @Summary      List a candidate's interviews
// @Tags         interviews
// @Produce      json
// @Param        id path int true "Candidate ID"
// @Success      200 {object}  dto.DataResponse[[]dto.InterviewResponse]
// @Failure      404 {object}  dto.ErrorResponse "Candidate not found"
// @Router       /interview/get-interview-by-candidate-id/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetInterviewsByCandidate(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	interviews, err := h.service.ListInterviewsByCandidate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		data = append(data, MapInterviewModelToResponse(&interviews[i]))
	}
	c.JSON(http.StatusOK, dto.DataResponse[[]dto.InterviewResponse]{Data: data})
}

// DeleteInterview godoc
// @Summary      Delete an interview
// @Description  Also deletes its review.
// @Tags         interviews
// @Produce      json
// @Param        id path int true "Interview ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /interview/delete-interview/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	if err := h.service.DeleteInterview(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Interview deleted successfully"})
}

// FilterInterviews godoc
// @Summary      Filter interviews
// @Description  dateRange is one of today, yesterday, last-week, last-month, last-quarter, last-year or custom (with startDate and endDate).
// @Tags         interviews
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        limit     query int    false "Page size" default(10)
// @Param        search    query string false "Candidate name, email or phone substring"
// @Param        status    query string false "Statuses, comma-separated"
// @Param        round     query string false "Round names, comma-separated"
// @Param        dateRange query string false "Date range preset"
// @Param        startDate query string false "Custom range start (YYYY-MM-DD)"
// @Param        endDate   query string false "Custom range end (YYYY-MM-DD)"
// @Success      200 {object}  dto.ListResponse[dto.InterviewResponse]
// @Failure      400 {object}  dto.ErrorResponse "Invalid filters"
// @Router       /interview/interview-filter [get]
// @Security     BearerAuth
func (h *InterviewHandler) FilterInterviews(c *gin.Context) {
	var q dto.InterviewFilterQuery
	if !bindQuery(c, h.validator, &q) {
		return
	}
	page, err := h.service.FilterInterviews(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(page, MapInterviewModelToResponse))
}
