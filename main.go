package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/biscenic/biscenic-api/config"
	"github.com/biscenic/biscenic-api/controllers"
	"github.com/biscenic/biscenic-api/database"
	"github.com/biscenic/biscenic-api/gateways"
	"github.com/biscenic/biscenic-api/routes"
	"github.com/biscenic/biscenic-api/services"
	"github.com/biscenic/biscenic-api/utils"
)

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database synced successfully")

	mailer := utils.NewMailer(cfg.SMTP)
	emails := services.NewEmailService(mailer, cfg.SMTP.AdminEmail, logger)
	orders := services.NewOrderService(services.NewGormOrderStore(db), emails, logger)
	payments := services.NewPaymentService(db)

	paystack := gateways.NewPaystackClient(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL)
	flutterwave := gateways.NewFlutterwaveClient(cfg.Flutterwave.SecretKey, cfg.Flutterwave.BaseURL, cfg.FrontendURL+"/order-success")

	authController := controllers.NewAuthController(db, cfg.JWT, cfg.Env, logger)
	userController := controllers.NewUserController(db, logger)
	productController := controllers.NewProductController(db, cfg.S3, logger)
	collectionController := controllers.NewCollectionController(db, logger)
	orderController := controllers.NewOrderController(db, orders, logger)
	paymentController := controllers.NewPaymentController(payments, paystack, flutterwave, logger)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authController)
	routes.UserRoutes(server, userController, cfg.JWT.Secret)
	routes.ProductRoutes(server, productController, cfg.JWT.Secret)
	routes.CollectionRoutes(server, collectionController, cfg.JWT.Secret)
	routes.OrderRoutes(server, orderController, cfg.JWT.Secret)
	routes.PaymentRoutes(server, paymentController, orderController, cfg.JWT.Secret)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
