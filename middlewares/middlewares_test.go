package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"worker-management/constants"
	"worker-management/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter 本番と同じ順番でミドルウェアを積んだルーター
func newTestRouter() *gin.Engine {
	logger := zap.NewNop()
	authService := services.NewAuthService(testSecret, constants.RoleUser)

	r := gin.New()
	r.Use(RequestID(), Recovery(logger))
	api := r.Group("/api", AuthMiddleware(authService, logger), RequestGate(constants.UsersPath, logger, constants.RoleAdmin))

	handler := func(ctx *gin.Context) {
		identity := CurrentIdentity(ctx)
		ctx.JSON(http.StatusOK, gin.H{"role": identity.Role, "authenticated": identity.Authenticated})
	}
	api.GET("/users", handler)
	api.POST("/users", handler)
	api.PUT("/users/:id", handler)
	api.DELETE("/users/:id", handler)
	api.POST("/roles", handler)
	api.GET("/panic", func(ctx *gin.Context) { panic("boom") })
	return r
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := services.CreateToken(testSecret, 1, "", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func perform(r http.Handler, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestRequestGate(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		role           string
		expectedStatus int
	}{
		{"anonymous read", http.MethodGet, "/api/users", "", http.StatusOK},
		{"anonymous create", http.MethodPost, "/api/users", "", http.StatusForbidden},
		{"user create", http.MethodPost, "/api/users", constants.RoleUser, http.StatusForbidden},
		{"user update", http.MethodPut, "/api/users/1", constants.RoleUser, http.StatusForbidden},
		{"user delete", http.MethodDelete, "/api/users/1", constants.RoleUser, http.StatusForbidden},
		{"user read", http.MethodGet, "/api/users", constants.RoleUser, http.StatusOK},
		{"admin create", http.MethodPost, "/api/users", constants.RoleAdmin, http.StatusOK},
		{"admin update", http.MethodPut, "/api/users/1", constants.RoleAdmin, http.StatusOK},
		{"admin delete", http.MethodDelete, "/api/users/1", constants.RoleAdmin, http.StatusOK},
		{"other path is not gated", http.MethodPost, "/api/roles", constants.RoleUser, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorization := ""
			if tt.role != "" {
				authorization = bearer(t, tt.role)
			}

			w := perform(r, tt.method, tt.path, authorization)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Equal(t, constants.ErrForbidden, errorMessage(t, w))
			}
		})
	}
}

func TestRequestGate_WithoutIdentity(t *testing.T) {
	r := gin.New()
	r.Use(RequestGate(constants.UsersPath, zap.NewNop(), constants.RoleAdmin))
	r.POST("/api/users", func(ctx *gin.Context) { ctx.Status(http.StatusCreated) })

	w := perform(r, http.MethodPost, "/api/users", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter()

	t.Run("anonymous", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/users", "")

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, constants.RoleUser, body["role"])
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("authenticated", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/users", bearer(t, "admin"))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, constants.RoleAdmin, body["role"])
		assert.Equal(t, true, body["authenticated"])
	})

	t.Run("not bearer", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/users", "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, constants.ErrInvalidToken, errorMessage(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/users", "Bearer invalid")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, constants.ErrInvalidToken, errorMessage(t, w))
	})
}

func TestRequestID(t *testing.T) {
	r := newTestRouter()

	w := perform(r, http.MethodGet, "/api/users", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	r := newTestRouter()

	w := perform(r, http.MethodGet, "/api/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, constants.ErrUnexpected, errorMessage(t, w))
}
