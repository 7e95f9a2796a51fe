package dto

// CandidateRequest is the full candidate record accepted by add-details and
// update-candidate. Skills and positions are names, created on demand.
type CandidateRequest struct {
	ID                int64    `json:"-"`
	AddBy             string   `json:"addBy" validate:"max=100"`
	FullName          string   `json:"fullName" validate:"required,trimmin=2,max=200"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required,max=10"`
	TotalExperience   float64  `json:"totalExperience" validate:"gte=0,lte=30"`
	CurrentSalary     *float64 `json:"currentSalary" validate:"omitempty,gte=0"`
	ExpectedSalary    *float64 `json:"expectedSalary" validate:"omitempty,gte=0"`
	Notes             string   `json:"notes" validate:"max=1000"`
	Education         []string `json:"education" validate:"omitempty,dive,notblank"`
	PreviousCompanies string   `json:"previousCompanies" validate:"omitempty,min=2"`
	Availability      string   `json:"availability" validate:"max=100"`
	Skills            []string `json:"skills" validate:"required,min=1,dive,notblank"`
	AppliedPosition   []string `json:"appliedPosition" validate:"required,min=1,dive,notblank"`
}

// CandidateFilterQuery filters the candidate listing. Skills and Position are
// comma-separated name lists; Skill is accepted as an alias of Skills.
type CandidateFilterQuery struct {
	Page     int    `form:"page" validate:"omitempty,gte=1"`
	Limit    int    `form:"limit" validate:"omitempty,gte=1"`
	Search   string `form:"search" validate:"max=200"`
	Skills   string `form:"skills"`
	Skill    string `form:"skill"`
	Position string `form:"position"`
}

// ResumeUploadResponse acknowledges a resume upload.
type ResumeUploadResponse struct {
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}
