package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/study-space/core/internal/config"
	"github.com/study-space/core/internal/models"
)

func newTestRouter(store *fakeStore, client *fakeClient, ai config.AIRuntimeConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(store, client, ai, zap.NewNop())
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{response: "Integrals accumulate change."}
	r := newTestRouter(store, client, config.AIRuntimeConfig{APIKey: "sk-test"})

	w := doRequest(r, http.MethodPost, "/api/chat",
		`{"message":"Explain derivatives","session_id":"session-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "mathematics", msg.Subject)
	assert.Equal(t, "openai/gpt-4o", msg.AIModelUsed)
	assert.Equal(t, "Integrals accumulate change.", msg.AIResponse)
	assert.Len(t, msg.Sources, 5)
	require.Len(t, store.exchanges, 1)
}

func TestChatEndpointValidation(t *testing.T) {
	r := newTestRouter(&fakeStore{}, &fakeClient{}, config.AIRuntimeConfig{APIKey: "sk-test"})

	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{"session_id":"session-1"}`},
		{"missing session_id", `{"message":"hello"}`},
		{"malformed json", `{"message":`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var envelope map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.EqualValues(t, 0, envelope["ok"])
		})
	}
}

func TestChatEndpointNotConfigured(t *testing.T) {
	r := newTestRouter(&fakeStore{}, &fakeClient{}, config.AIRuntimeConfig{})

	w := doRequest(r, http.MethodPost, "/api/chat",
		`{"message":"hello","session_id":"session-1"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "API key not configured", envelope["message"])
}

func TestCreateSessionEndpoint(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store, &fakeClient{}, config.AIRuntimeConfig{})

	w := doRequest(r, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var session models.ChatSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 0, session.TotalMessages)
	require.Len(t, store.sessions, 1)
}

func TestSessionMessagesEndpoint(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{response: "ok"}
	r := newTestRouter(store, client, config.AIRuntimeConfig{APIKey: "sk-test"})

	// empty session still answers with an empty list
	w := doRequest(r, http.MethodGet, "/api/sessions/session-1/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.ChatMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data)

	w = doRequest(r, http.MethodPost, "/api/chat",
		`{"message":"hello","session_id":"session-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/sessions/session-1/messages", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "session-1", envelope.Data[0].SessionID)
}
