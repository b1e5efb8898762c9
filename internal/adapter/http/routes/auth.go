package routes

import (
	"budget_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

// addAuthRoutes leaves only login public.
func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, requireSession gin.HandlerFunc) {
	a := rg.Group(PathAuth)
	{
		a.POST("/login", authHandler.Login)
		a.POST("/logout", requireSession, authHandler.Logout)
		a.GET("/session", requireSession, authHandler.GetSession)
		a.PUT("/session/role", requireSession, authHandler.SwitchRole)
	}
}
