package subject

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-space/core/internal/models"
)

func newResourcesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api"))
	return r
}

func TestResourcesEndpoint(t *testing.T) {
	r := newResourcesRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/resources/photography", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.UniversityResource `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.LessOrEqual(t, len(envelope.Data), 5)
	require.Len(t, envelope.Data, 5)
	for _, item := range envelope.Data {
		assert.Equal(t, "photography", item.Subject)
	}
}

func TestResourcesEndpointCaseInsensitive(t *testing.T) {
	r := newResourcesRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/resources/Film_Directing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResourcesEndpointUnknownSubject(t *testing.T) {
	r := newResourcesRouter()

	for _, path := range []string{"/api/resources/astrology", "/api/resources/media"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNotFound, w.Code, path)

		var envelope map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "Subject not found", envelope["message"])
	}
}
