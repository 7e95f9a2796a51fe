package handlers

import (
	"net/http"

	"hrm-api/internal/api/middleware"
	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/timeconv"
	"hrm-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, v *validator.Validate, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

// bindQuery decodes and validates query parameters.
func bindQuery(c *gin.Context, v *validator.Validate, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

// bindID parses the :id path segment as a positive integer.
func bindID(c *gin.Context, v *validator.Validate) (int64, bool) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid ID format"})
		return 0, false
	}
	if err := v.Struct(p); err != nil {
		respondValidation(c, err)
		return 0, false
	}
	return p.ID, true
}

func currentSession(c *gin.Context) (*auth.Session, bool) {
	session, err := middleware.SessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return session, true
}

func listResponse[T, R any](page *services.Page[T], mapFn func(*T) R) dto.ListResponse[R] {
	data := make([]R, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, mapFn(&page.Items[i]))
	}
	return dto.ListResponse[R]{Data: data, Total: page.Total, NextPage: page.NextPage}
}

func identity[T any](v *T) T { return *v }

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapInterviewModelToResponse renders stored 24-hour times in 12-hour form.
func MapInterviewModelToResponse(iv *models.Interview) dto.InterviewResponse {
	resp := dto.InterviewResponse{
		ID:             iv.ID,
		Interviewer:    iv.Interviewer,
		CandidateID:    iv.CandidateID,
		Candidate:      iv.Candidate,
		Date:           iv.Date,
		StartTime:      timeconv.MustTo12(iv.StartTime),
		EndTime:        timeconv.MustTo12(iv.EndTime),
		InterviewRound: iv.InterviewRound,
		Status:         iv.Status,
		MeetingLink:    iv.MeetingLink,
		CreatedAt:      iv.CreatedAt,
		UpdatedAt:      iv.UpdatedAt,
	}
	if iv.Review != nil {
		resp.Review = &dto.ReviewResponse{
			ID:        iv.Review.ID,
			Score:     iv.Review.Score,
			Feedback:  iv.Review.Feedback,
			CreatedAt: iv.Review.CreatedAt,
			UpdatedAt: iv.Review.UpdatedAt,
		}
	}
	return resp
}
