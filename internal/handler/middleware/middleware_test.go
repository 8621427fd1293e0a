//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"salon-dashboard/internal/handler/httperr"
	"salon-dashboard/internal/handler/middleware"
	"salon-dashboard/internal/pkg/config"
	"salon-dashboard/internal/pkg/cookie"
	"salon-dashboard/internal/pkg/jwt"
	"salon-dashboard/internal/usecase"
	"salon-dashboard/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(middleware.ErrorHandler(), middleware.CustomRecovery())
	router.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("prompt closed"), "No appointment prompt is open", nil)
	})
	router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("unreported"))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("AbortWithErrorのエンベロープをそのまま返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		resp := httptest.AssertErrorResponse(t, rec, http.StatusConflict, "No appointment prompt is open")
		assert.Nil(t, resp.Detail)
		assert.NotContains(t, rec.Body.String(), "prompt closed")
	})

	t.Run("未応答のハンドラは500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("パニックは500に変換", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("nilエラーは受け付けない", func(t *testing.T) {
		c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
		})
	})
}

func TestRequireAuth(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		userType, _ := middleware.GetUserType(c)
		c.JSON(http.StatusOK, gin.H{"id": userID, "type": userType.String()})
	})

	token, err := jwtService.GenerateToken("usr_001", "owner")
	require.NoError(t, err)

	t.Run("Bearerトークンで認証", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, map[string]string{"id": "usr_001", "type": "owner"}, body)
	})

	t.Run("Cookieで認証", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, cookies, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("トークンなしは401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("別の鍵で署名されたトークンは401", func(t *testing.T) {
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateToken("usr_001", "owner")
		require.NoError(t, err)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, forged)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestCORSMiddleware(t *testing.T) {
	preflight := func(router *gin.Engine, origin string) *nethttptest.ResponseRecorder {
		req := nethttptest.NewRequest(http.MethodOptions, "/api/calendar/board", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("許可オリジンは資格情報付き", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		}))

		rec := preflight(router, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("ワイルドカードは資格情報なし", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST"},
			AllowCredentials: true,
		}))

		rec := preflight(router, "http://anywhere.test")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("オリジン未設定ならデフォルトで起動する", func(t *testing.T) {
		router := gin.New()
		require.NotPanics(t, func() {
			router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
				AllowOrigins: []string{""},
				AllowMethods: []string{"GET", "POST"},
			}))
		})

		rec := preflight(router, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

		rec = preflight(router, "http://evil.test")
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("テスト設定で起動できる", func(t *testing.T) {
		router := gin.New()
		require.NotPanics(t, func() {
			router.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
		})

		rec := preflight(router, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("受け取ったリクエストIDを引き継ぐ", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-123", rec.Body.String())
	})

	t.Run("未指定なら採番する", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")

		id := rec.Header().Get("X-Request-ID")
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, id)
		assert.Equal(t, id, rec.Body.String())
	})
}
