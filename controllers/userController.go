package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/models"
)

type UserController struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserController(db *gorm.DB, logger *zap.Logger) *UserController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserController{db: db, logger: logger}
}

func (c *UserController) GetUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var user models.User
	if err := c.db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found.")
		} else {
			c.logger.Error("failed to fetch user", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	var users []models.User
	if err := c.db.Find(&users).Error; err != nil {
		c.logger.Error("failed to fetch users", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetCurrentUser returns the profile of the authenticated user, based on the
// claims the auth middleware put in the context.
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized: No user found in token.")
		return
	}

	claims := userClaims.(jwt.MapClaims)
	id, ok := claims["id"].(float64)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized: No user found in token.")
		return
	}

	var user models.User
	if err := c.db.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found.")
		} else {
			c.logger.Error("failed to fetch current user", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}
