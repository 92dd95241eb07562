package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
	"github.com/biscenic/biscenic-api/middlewares"
)

func CollectionRoutes(server *gin.Engine, collections *controllers.CollectionController, jwtSecret string) {
	group := server.Group("/api/collections")
	{
		group.GET("", collections.GetCollections)
		group.GET("/:id", collections.GetCollection)

		admin := group.Group("", middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin())
		{
			admin.POST("", collections.CreateCollection)
			admin.PUT("/:id", collections.UpdateCollection)
			admin.DELETE("/:id", collections.DeleteCollection)
		}
	}
}
