package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
	"github.com/biscenic/biscenic-api/middlewares"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController, jwtSecret string) {
	group := server.Group("/api/products")
	{
		group.GET("", products.GetProducts)
		group.GET("/:id", products.GetProduct)

		admin := group.Group("", middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin())
		{
			admin.POST("", products.CreateProduct)
			admin.PUT("/:id", products.UpdateProduct)
			admin.DELETE("/:id", products.DeleteProduct)
			admin.POST("/images", products.UploadProductImages)
		}
	}
}
