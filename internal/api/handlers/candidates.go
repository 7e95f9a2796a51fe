package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MaxResumeSize is the largest resume upload accepted.
const MaxResumeSize = 5 << 20

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// CandidateHandler holds dependencies for candidate operations.
type CandidateHandler struct {
	service   services.CandidateService
	validator *validator.Validate
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(service services.CandidateService, validate *validator.Validate) *CandidateHandler {
	return &CandidateHandler{service: service, validator: validate}
}

// AddCandidateResume godoc
// @Summary      Upload a resume
// @Description  Accepts a resume file (pdf, doc, docx; at most 5 MiB). The file is not stored or parsed.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume formData file true "Resume file"
// @Success      202 {object}  dto.ResumeUploadResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      413 {object}  dto.ErrorResponse
// @Router       /candidate/add-candidate [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddCandidateResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxResumeSize+1<<20)
	file, err := c.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Resume must be at most 5 MB"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Resume file is required"})
		return
	}
	if file.Size > MaxResumeSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Resume must be at most 5 MB"})
		return
	}
	if !resumeExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Resume must be a PDF or Word document"})
		return
	}
	c.JSON(http.StatusAccepted, dto.ResumeUploadResponse{
		Message:  "Resume received",
		FileName: filepath.Base(file.Filename),
		Size:     file.Size,
	})
}

// AddCandidate godoc
// @Summary      Add a candidate
// @Description  Stores a candidate. Unknown skills and positions are created.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate body      dto.CandidateRequest true  "Candidate details"
// @Success      201 {object}  dto.DataResponse[models.Candidate]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse "Candidate with this email already exists"
// @Router       /candidate/add-details [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req dto.CandidateRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	if strings.TrimSpace(req.AddBy) == "" {
		req.AddBy = session.Email
	}
	candidate, err := h.service.AddCandidate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse[*models.Candidate]{Message: "Candidate added successfully", Data: candidate})
}

// UpdateCandidate godoc
// @Summary      Update a candidate
// @Description  Replaces every field, including skills and applied positions.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id        path      int true  "Candidate ID"
// @Param        candidate body      dto.CandidateRequest true  "Candidate details"
// @Success      200 {object}  dto.DataResponse[models.Candidate]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse
// @Router       /candidate/update-candidate/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	var req dto.CandidateRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id
	if strings.TrimSpace(req.AddBy) == "" {
		req.AddBy = session.Email
	}
	candidate, err := h.service.UpdateCandidate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[*models.Candidate]{Message: "Candidate updated successfully", Data: candidate})
}

// GetCandidate godoc
// @Summary      Get a candidate by ID
// @Tags         candidates
// @Produce      json
// @Param        id path int true "Candidate ID"
// @Success      200 {object}  dto.DataResponse[models.Candidate]
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /candidate/get-candidate/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	candidate, err := h.service.GetCandidate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[*models.Candidate]{Data: candidate})
}

// DeleteCandidate godoc
// @Summary      Delete a candidate
// @Description  Also deletes the candidate's interviews and reviews.
// @Tags         candidates
// @Produce      json
// @Param        id path int true "Candidate ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /candidate/delete-candidate/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	if err := h.service.DeleteCandidate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Candidate deleted successfully"})
}

// FilterCandidates godoc
// @Summary      Filter candidates
// @Description  Search over name and email, filtered by skills and positions (comma-separated).
// @Tags         candidates
// @Produce      json
// @Param        page     query int    false "Page number" default(1)
// @Param        limit    query int    false "Page size" default(10)
// @Param        search   query string false "Name or email substring"
// @Param        skills   query string false "Skill names, comma-separated"
// @Param        position query string false "Position names, comma-separated"
// @Success      200 {object}  dto.ListResponse[models.Candidate]
// @Failure      400 {object}  dto.ErrorResponse
// @Router       /candidate/filter [get]
// @Security     BearerAuth
func (h *CandidateHandler) FilterCandidates(c *gin.Context) {
	var q dto.CandidateFilterQuery
	if !bindQuery(c, h.validator, &q) {
		return
	}
	page, err := h.service.FilterCandidates(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(page, identity[models.Candidate]))
}

// PaginateSearchable godoc
// @Summary      Page through candidates
// @Description  Lightweight listing searched by full name, used by selection widgets.
// @Tags         candidates
// @Produce      json
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(10)
// @Param        search query string false "Full name substring"
// @Success      200 {object}  dto.ListResponse[models.Candidate]
// @Router       /candidate/paginate-searchable [get]
// @Security     BearerAuth
func (h *CandidateHandler) PaginateSearchable(c *gin.Context) {
	var q dto.PaginationQuery
	if !bindQuery(c, h.validator, &q) {
		return
	}
	page, err := h.service.PaginateSearchable(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(page, identity[models.Candidate]))
}
