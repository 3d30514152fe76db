package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/edu-match/internal/models"
	"github.com/franciscosanchezn/edu-match/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, ping Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl, err := views.Templates()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)

	router.GET("/", NewHomeController().Home)
	router.GET("/health", NewHealthController(ping).HealthCheck)
	return router
}

func TestHomeShowsBothLabels(t *testing.T) {
	router := setupRouter(t, func(context.Context) error { return nil })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "EduMatch Platform")
	assert.Contains(t, w.Body.String(), "System is running.")
}

func TestHealthCheckHealthy(t *testing.T) {
	router := setupRouter(t, func(context.Context) error { return nil })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "edu-match", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	router := setupRouter(t, func(context.Context) error { return errors.New("connection refused") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrServiceUnavailable, apiErr.Code)
}
