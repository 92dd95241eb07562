package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	group := server.Group("/api/auth")
	{
		group.POST("/signup", auth.Signup)
		group.POST("/login", auth.Login)
		group.POST("/logout", auth.Logout)
	}
}
