package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"worker-management/middlewares"
	"worker-management/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionController_Current(t *testing.T) {
	authService := services.NewAuthService("secret", "USER")
	r := gin.New()
	r.GET("/api/session", middlewares.AuthMiddleware(authService, zap.NewNop()), NewSessionController().Current)

	w := doJSON(r, http.MethodGet, "/api/session", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"USER","authenticated":false,"canManage":false}`, w.Body.String())

	token, err := services.CreateToken("secret", 1, "admin@x.com", "ADMIN", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"ADMIN","authenticated":true,"canManage":true}`, w.Body.String())
}

func TestSessionController_NoIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/api/session", NewSessionController().Current)

	w := doJSON(r, http.MethodGet, "/api/session", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
