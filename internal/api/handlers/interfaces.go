package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	Login(c *gin.Context)
	Profile(c *gin.Context)
	Logout(c *gin.Context)
	CreateUser(c *gin.Context)
	GetUsers(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
}

// CandidateHandlerInterface defines the methods needed by the candidate routes.
type CandidateHandlerInterface interface {
	AddCandidateResume(c *gin.Context)
	AddCandidate(c *gin.Context)
	UpdateCandidate(c *gin.Context)
	GetCandidate(c *gin.Context)
	DeleteCandidate(c *gin.Context)
	FilterCandidates(c *gin.Context)
	PaginateSearchable(c *gin.Context)
}

// InterviewHandlerInterface defines the methods needed by the interview routes.
type InterviewHandlerInterface interface {
	AddInterview(c *gin.Context)
	GetInterviews(c *gin.Context)
	GetInterviewByID(c *gin.Context)
	GetInterviewsByCandidate(c *gin.Context)
	UpdateInterview(c *gin.Context)
	DeleteInterview(c *gin.Context)
	FilterInterviews(c *gin.Context)
}

type SkillHandlerInterface interface {
	AddSkill(c *gin.Context)
	GetSkills(c *gin.Context)
	GetSkillByID(c *gin.Context)
	UpdateSkill(c *gin.Context)
	DeleteSkill(c *gin.Context)
}

type PositionHandlerInterface interface {
	AddPosition(c *gin.Context)
	GetPositions(c *gin.Context)
	GetPositionByID(c *gin.Context)
	UpdatePosition(c *gin.Context)
	DeletePosition(c *gin.Context)
}

type InterviewRoundHandlerInterface interface {
	AddInterviewRound(c *gin.Context)
	GetInterviewRounds(c *gin.Context)
	GetInterviewRoundByID(c *gin.Context)
	UpdateInterviewRound(c *gin.Context)
	DeleteInterviewRound(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ UserHandlerInterface           = (*UserHandler)(nil)
	_ CandidateHandlerInterface      = (*CandidateHandler)(nil)
	_ InterviewHandlerInterface      = (*InterviewHandler)(nil)
	_ SkillHandlerInterface          = (*SkillHandler)(nil)
	_ PositionHandlerInterface       = (*PositionHandler)(nil)
	_ InterviewRoundHandlerInterface = (*InterviewRoundHandler)(nil)
)
