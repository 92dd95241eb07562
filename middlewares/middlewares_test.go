package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    float64(42),
		"name":  "Ada Obi",
		"email": "ada@example.com",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append(handlers, func(ctx *gin.Context) {
		claims, _ := ctx.Get("user")
		if mapClaims, ok := claims.(jwt.MapClaims); ok {
			ctx.JSON(http.StatusOK, gin.H{"email": mapClaims["email"]})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"email": nil})
	})
	router.GET("/protected", chain...)
	return router
}

func get(router *gin.Engine, modify func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if modify != nil {
		modify(req)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuthWithBearerToken(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	token := signToken(t, testSecret, "customer", time.Hour)

	recorder := get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ada@example.com")
}

func TestRequireAuthWithCookie(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	token := signToken(t, testSecret, "customer", time.Hour)

	recorder := get(router, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "auth-token", Value: token})
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))

	recorder := get(router, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authentication required")
}

func TestRequireAuthWrongSecret(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	token := signToken(t, "other-secret", "customer", time.Hour)

	recorder := get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	token := signToken(t, testSecret, "customer", -time.Hour)

	recorder := get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	router := newProtectedRouter(OptionalAuth(testSecret))

	recorder := get(router, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "null")
}

func TestOptionalAuthWithInvalidToken(t *testing.T) {
	router := newProtectedRouter(OptionalAuth(testSecret))

	recorder := get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "null")
}

func TestOptionalAuthWithValidToken(t *testing.T) {
	router := newProtectedRouter(OptionalAuth(testSecret))
	token := signToken(t, testSecret, "customer", time.Hour)

	recorder := get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ada@example.com")
}

func TestRequireAdmin(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret), RequireAdmin())

	adminToken := signToken(t, testSecret, "admin", time.Hour)
	recorder := get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+adminToken)
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	customerToken := signToken(t, testSecret, "customer", time.Hour)
	recorder = get(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+customerToken)
	})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Admin access required")
}

func TestRequireAdminWithoutClaims(t *testing.T) {
	router := newProtectedRouter(RequireAdmin())

	recorder := get(router, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
