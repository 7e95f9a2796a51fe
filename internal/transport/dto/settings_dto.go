package dto

import "hrm-api/internal/models"

type SkillRequest struct {
	ID       int64  `json:"-"`
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Category string `json:"category" validate:"required,notblank,max=100"`
}

type PositionRequest struct {
	ID         int64                `json:"-"`
	Name       string               `json:"name" validate:"required,trimmin=2,max=100"`
	Department string               `json:"department" validate:"required,trimmin=2,max=100"`
	Level      models.PositionLevel `json:"level" validate:"required,positionlevel"`
}

type InterviewRoundRequest struct {
	ID          int64  `json:"-"`
	Name        string `json:"name" validate:"required,trimmin=2,max=100"`
	Description string `json:"description" validate:"required,trimmin=2,max=500"`
}
