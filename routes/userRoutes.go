package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
	"github.com/biscenic/biscenic-api/middlewares"
)

func UserRoutes(server *gin.Engine, users *controllers.UserController, jwtSecret string) {
	group := server.Group("/api/users", middlewares.RequireAuth(jwtSecret))
	{
		group.GET("/me", users.GetCurrentUser)
		group.GET("/:id", users.GetUser)
		group.GET("", middlewares.RequireAdmin(), users.GetUsers)
	}
}
