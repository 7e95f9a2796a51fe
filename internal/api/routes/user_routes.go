package routes

import (
	"hrm-api/internal/api/handlers"
	"hrm-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the account and session routes. Login is
// public and rate limited; everything else requires a token.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler handlers.UserHandlerInterface,
	authMiddleware gin.HandlerFunc,
	loginLimiter gin.HandlerFunc,
) {
	users := rg.Group("/user")
	users.POST("/login", loginLimiter, userHandler.Login)

	authed := users.Group("")
	authed.Use(authMiddleware)
	{
		authed.GET("/profile", userHandler.Profile)
		authed.POST("/logout", userHandler.Logout)
		authed.GET("/get-user", userHandler.GetUsers)
		authed.PUT("/update-user/:id", userHandler.UpdateUser)
		authed.POST("/create-user", middleware.RequireAdmin(), userHandler.CreateUser)
		authed.DELETE("/delete-user/:id", middleware.RequireAdmin(), userHandler.DeleteUser)
	}
}
