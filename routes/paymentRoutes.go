package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/biscenic/biscenic-api/controllers"
	"github.com/biscenic/biscenic-api/middlewares"
)

func PaymentRoutes(server *gin.Engine, payments *controllers.PaymentController, orders *controllers.OrderController, jwtSecret string) {
	group := server.Group("/api/payments")
	{
		group.POST("/initialize", payments.InitiatePayment)
		group.GET("/verify", payments.VerifyPayment)
		group.POST("/create-order", middlewares.OptionalAuth(jwtSecret), orders.CreateOrder)

		authed := group.Group("", middlewares.RequireAuth(jwtSecret))
		{
			authed.POST("", payments.CreatePayment)
			authed.GET("/user/:userId", payments.GetPaymentsByUser)
			authed.GET("/reference/:reference", payments.GetPaymentByReference)
		}
	}
}
