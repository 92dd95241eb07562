package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
