package dto

import (
	"time"

	"hrm-api/internal/models"
)

// InterviewRequest is the full interview record accepted by add-interview and
// update-interview. Times use the 12-hour display form. Review is only read on update.
type InterviewRequest struct {
	ID             int64                  `json:"-"`
	Interviewer    string                 `json:"interviewer" validate:"required,trimmin=2"`
	CandidateID    int64                  `json:"candidateId" validate:"required,gt=0"`
	Date           string                 `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string                 `json:"startTime" validate:"required,clock12"`
	EndTime        string                 `json:"endTime" validate:"required,clock12"`
	InterviewRound string                 `json:"interviewRound" validate:"required,notblank"`
	Status         models.InterviewStatus `json:"status" validate:"omitempty,interviewstatus"`
	MeetingLink    string                 `json:"meetingLink" validate:"omitempty,url"`
	Review         *ReviewRequest         `json:"review"`
}

// ReviewRequest is the optional review carried by an interview update.
type ReviewRequest struct {
	Score    *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	Feedback *string  `json:"feedback" validate:"omitempty,max=5000"`
}

// InterviewFilterQuery filters the interview listing. Status and Round are
// comma-separated sets. StartDate and EndDate are read for dateRange=custom.
type InterviewFilterQuery struct {
	Page      int    `form:"page" validate:"omitempty,gte=1"`
	Limit     int    `form:"limit" validate:"omitempty,gte=1"`
	Search    string `form:"search" validate:"max=200"`
	Status    string `form:"status"`
	Round     string `form:"round"`
	DateRange string `form:"dateRange"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Score     *float64  `json:"score"`
	Feedback  *string   `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InterviewResponse renders times back in 12-hour form.
type InterviewResponse struct {
	ID             int64                    `json:"id"`
	Interviewer    string                   `json:"interviewer"`
	CandidateID    int64                    `json:"candidateId"`
	Candidate      *models.CandidateSummary `json:"candidate,omitempty"`
	Date           string                   `json:"date"`
	StartTime      string                   `json:"startTime"`
	EndTime        string                   `json:"endTime"`
	InterviewRound string                   `json:"interviewRound"`
	Status         models.InterviewStatus   `json:"status"`
	MeetingLink    *string                  `json:"meetingLink"`
	Review         *ReviewResponse          `json:"review"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}
