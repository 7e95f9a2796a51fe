package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// InterviewStatus is the outcome state of an interview.
type InterviewStatus string

const (
	StatusPending InterviewStatus = "pending"
	StatusPassed  InterviewStatus = "passed"
	StatusFailed  InterviewStatus = "failed"
)

// IsValid reports whether s is one of the known statuses.
func (s InterviewStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPassed, StatusFailed:
		return true
	}
	return false
}

// Scan implements sql.Scanner so pgx can read the enum from a text column.
func (s *InterviewStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*s = InterviewStatus(v)
	case []byte:
		*s = InterviewStatus(v)
	case nil:
		*s = StatusPending
	default:
		return fmt.Errorf("cannot scan %T into InterviewStatus", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (s InterviewStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(StatusPending), nil
	}
	return string(s), nil
}

// PositionLevel is the seniority of a position.
type PositionLevel string

const (
	LevelJunior  PositionLevel = "Junior"
	LevelMid     PositionLevel = "Mid"
	LevelSenior  PositionLevel = "Senior"
	LevelManager PositionLevel = "Manager"
)

func (l PositionLevel) IsValid() bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior, LevelManager:
		return true
	}
	return false
}

// User roles. The mixed casing matches the values stored by existing clients.
const (
	RoleAdmin     = "admin"
	RoleHR        = "hr"
	RoleManager   = "Manager"
	RoleRecruiter = "Recruiter"
)

// Defaults applied when a reference row is created implicitly by name.
const (
	DefaultSkillCategory      = "General"
	DefaultPositionDepartment = "General"
	DefaultPositionLevel      = LevelJunior
	DefaultRoundDescription   = "General"
)

// User represents an HRM staff account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Skill is a reference entity attached to candidates.
type Skill struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Position is a reference entity a candidate applies for.
type Position struct {
	ID         int64         `json:"id" db:"id"`
	Name       string        `json:"name" db:"name"`
	Department string        `json:"department" db:"department"`
	Level      PositionLevel `json:"level" db:"level"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}

// InterviewRound is a named stage of the hiring pipeline.
type InterviewRound struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Candidate is a job applicant.
type Candidate struct {
	ID                int64      `json:"id" db:"id"`
	AddBy             string     `json:"addBy" db:"add_by"`
	FullName          string     `json:"fullName" db:"full_name"`
	Email             string     `json:"email" db:"email"`
	Phone             string     `json:"phone" db:"phone"`
	TotalExperience   float64    `json:"totalExperience" db:"total_experience"`
	CurrentSalary     *float64   `json:"currentSalary" db:"current_salary"`
	ExpectedSalary    *float64   `json:"expectedSalary" db:"expected_salary"`
	Notes             string     `json:"notes" db:"notes"`
	Education         []string   `json:"education" db:"education"`
	PreviousCompanies *string    `json:"previousCompanies" db:"previous_companies"`
	Availability      *string    `json:"availability" db:"availability"`
	Skills            []Skill    `json:"skills" db:"-"`
	AppliedPositions  []Position `json:"appliedPosition" db:"-"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

// CandidateSummary is the slice of a candidate returned alongside interviews.
type CandidateSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Interview is one scheduled meeting with a candidate. Date is YYYY-MM-DD and
// the times are stored as 24-hour HH:MM:SS strings.
type Interview struct {
	ID             int64             `json:"id"`
	Interviewer    string            `json:"interviewer"`
	CandidateID    int64             `json:"candidateId"`
	Date           string            `json:"date"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	InterviewRound string            `json:"interviewRound"`
	Status         InterviewStatus   `json:"status"`
	MeetingLink    *string           `json:"meetingLink"`
	Review         *Review           `json:"review"`
	Candidate      *CandidateSummary `json:"candidate,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Review is the scored feedback attached to a single interview.
type Review struct {
	ID          int64     `json:"id"`
	InterviewID int64     `json:"interviewId"`
	Score       *float64  `json:"score"`
	Feedback    *string   `json:"feedback"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
