package routes

import (
	"hrm-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInterviewRoutes registers all routes related to interviews and their reviews.
func RegisterInterviewRoutes(
	rg *gin.RouterGroup,
	interviewHandler handlers.InterviewHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	interviews := rg.Group("/interview")
	interviews.Use(authMiddleware)
	{
		interviews.POST("/add-interview", interviewHandler.AddInterview)
		interviews.GET("/get-interview", interviewHandler.GetInterviews)
		interviews.GET("/get-interview/:id", interviewHandler.GetInterviewByID)
		interviews.GET("/get-interview-by-candidate-id/:id", interviewHandler.GetInterviewsByCandidate)
		interviews.PUT("/update-interview/:id", interviewHandler.UpdateInterview)
		interviews.DELETE("/delete-interview/:id", interviewHandler.DeleteInterview)
		interviews.GET("/interview-filter", interviewHandler.FilterInterviews)
	}
}
