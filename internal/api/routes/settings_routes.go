package routes

import (
	"hrm-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSkillRoutes registers the skill settings routes.
func RegisterSkillRoutes(rg *gin.RouterGroup, h handlers.SkillHandlerInterface, authMiddleware gin.HandlerFunc) {
	skills := rg.Group("/skills")
	skills.Use(authMiddleware)
	{
		skills.POST("/add-skill", h.AddSkill)
		skills.GET("/get-skill", h.GetSkills)
		skills.GET("/get-skills-by-id/:id", h.GetSkillByID)
		skills.PUT("/update-skill/:id", h.UpdateSkill)
		skills.DELETE("/delete-skill/:id", h.DeleteSkill)
	}
}

// RegisterPositionRoutes registers the position settings routes.
func RegisterPositionRoutes(rg *gin.RouterGroup, h handlers.PositionHandlerInterface, authMiddleware gin.HandlerFunc) {
	positions := rg.Group("/positions")
	positions.Use(authMiddleware)
	{
		positions.POST("/add-position", h.AddPosition)
		positions.GET("/get-position", h.GetPositions)
		positions.GET("/get-positions-by-id/:id", h.GetPositionByID)
		positions.PUT("/update-position/:id", h.UpdatePosition)
		positions.DELETE("/delete-position/:id", h.DeletePosition)
	}
}

// RegisterInterviewRoundRoutes registers the interview round settings routes.
func RegisterInterviewRoundRoutes(rg *gin.RouterGroup, h handlers.InterviewRoundHandlerInterface, authMiddleware gin.HandlerFunc) {
	rounds := rg.Group("/interview-round")
	rounds.Use(authMiddleware)
	{
		rounds.POST("/add-interview-round", h.AddInterviewRound)
		rounds.GET("/get-interview-round", h.GetInterviewRounds)
		rounds.GET("/get-interview-round-by-id/:id", h.GetInterviewRoundByID)
		rounds.PUT("/update-interview-round/:id", h.UpdateInterviewRound)
		rounds.DELETE("/delete-interview-round/:id", h.DeleteInterviewRound)
	}
}
