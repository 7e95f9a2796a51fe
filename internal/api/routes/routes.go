package routes

import (
	"log/slog"

	"hrm-api/internal/api/handlers"
	"hrm-api/internal/api/middleware"
	"hrm-api/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	api := router.Group("/api")

	userHandler := handlers.NewUserHandler(app.Users, app.Validator)
	candidateHandler := handlers.NewCandidateHandler(app.Candidates, app.Validator)
	interviewHandler := handlers.NewInterviewHandler(app.Interviews, app.Validator)
	skillHandler := handlers.NewSkillHandler(app.Skills, app.Validator)
	positionHandler := handlers.NewPositionHandler(app.Positions, app.Validator)
	roundHandler := handlers.NewInterviewRoundHandler(app.InterviewRounds, app.Validator)

	authMiddleware := middleware.JWTAuthMiddleware(app.Tokens, app.Revoker)
	loginLimiter := middleware.RateLimit(app.LoginLimiter)

	RegisterUserRoutes(api, userHandler, authMiddleware, loginLimiter)
	RegisterCandidateRoutes(api, candidateHandler, authMiddleware)
	RegisterInterviewRoutes(api, interviewHandler, authMiddleware)
	RegisterSkillRoutes(api, skillHandler, authMiddleware)
	RegisterPositionRoutes(api, positionHandler, authMiddleware)
	RegisterInterviewRoundRoutes(api, roundHandler, authMiddleware)

	health := handlers.NewHealthHandler(nil)
	if app.DBPool != nil {
		health = handlers.NewHealthHandler(app.DBPool)
	}
	router.GET("/health", health.HealthCheck)

	slog.Debug("configuring swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
