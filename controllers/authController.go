package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/config"
	"github.com/biscenic/biscenic-api/models"
)

const (
	bcryptCost = 10

	msgInvalidInput        = "invalid input"
	msgUserAlreadyExists   = "A user with this email address already exists."
	msgInvalidCredentials  = "Invalid credentials. Please try again."
	msgInternalServerError = "Internal server error"

	authCookieName = "auth-token"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

type AuthController struct {
	db     *gorm.DB
	jwtCfg config.JWTConfig
	env    string
	logger *zap.Logger
}

func NewAuthController(db *gorm.DB, jwtCfg config.JWTConfig, env string, logger *zap.Logger) *AuthController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthController{db: db, jwtCfg: jwtCfg, env: env, logger: logger}
}

func (c *AuthController) generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(c.jwtCfg.TTL).Unix(),
	})
	return token.SignedString([]byte(c.jwtCfg.Secret))
}

// Signup registers a new user. The password hash is computed right here,
// before the write, so the insert is a plain data transfer.
func (c *AuthController) Signup(ctx *gin.Context) {
	var input models.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.User
	result := c.db.Where("email = ?", input.Email).Find(&existing)
	if result.Error != nil {
		c.logger.Error("database error during user check", zap.Error(result.Error))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.logger.Error("password hashing error", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     models.RoleCustomer,
	}

	if result := c.db.Create(&user); result.Error != nil {
		c.logger.Error("user creation error", zap.Error(result.Error))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login authenticates a user and sets the token in an HTTP-only cookie as
// well as the response body.
func (c *AuthController) Login(ctx *gin.Context) {
	var input models.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if err := c.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Error("database error during login", zap.Error(err))
		}
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, input.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := c.generateJWT(user)
	if err != nil {
		c.logger.Error("JWT generation error", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		authCookieName,
		tokenString,
		int(c.jwtCfg.TTL.Seconds()),
		"/",
		"",
		c.env == "production",
		true,
	)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tokenString,
		"user":    user,
	})
}

// Logout clears the auth cookie.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(authCookieName, "", -1, "/", "", c.env == "production", true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Logged out"})
}
