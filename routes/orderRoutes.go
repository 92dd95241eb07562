package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
	"github.com/biscenic/biscenic-api/middlewares"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, jwtSecret string) {
	group := server.Group("/api/orders")
	{
		// Guest checkout is allowed, auth only attaches the user id.
		group.POST("", middlewares.OptionalAuth(jwtSecret), orders.CreateOrder)

		authed := group.Group("", middlewares.RequireAuth(jwtSecret))
		{
			authed.GET("/user/:userId", orders.GetOrdersByCustomer)
			authed.GET("/:orderId", orders.GetOrder)

			admin := authed.Group("", middlewares.RequireAdmin())
			{
				admin.GET("", orders.GetOrders)
				admin.PATCH("/:orderId", orders.UpdateOrderStatus)
				admin.DELETE("/:orderId", orders.DeleteOrder)
			}
		}
	}
}
