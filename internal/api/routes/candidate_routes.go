package routes

import (
	"hrm-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCandidateRoutes registers all routes related to candidates.
func RegisterCandidateRoutes(
	rg *gin.RouterGroup,
	candidateHandler handlers.CandidateHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	candidates := rg.Group("/candidate")
	candidates.Use(authMiddleware)
	{
		candidates.POST("/add-candidate", candidateHandler.AddCandidateResume)
		candidates.POST("/add-details", candidateHandler.AddCandidate)
		candidates.PUT("/update-candidate/:id", candidateHandler.UpdateCandidate)
		candidates.GET("/get-candidate/:id", candidateHandler.GetCandidate)
		candidates.DELETE("/delete-candidate/:id", candidateHandler.DeleteCandidate)
		candidates.GET("/filter", candidateHandler.FilterCandidates)
		candidates.GET("/paginate-searchable", candidateHandler.PaginateSearchable)
	}
}
