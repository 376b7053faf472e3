package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/search"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/store"
)

type stubProvider struct {
	results []search.Result
	err     error
}

func (s *stubProvider) Search(ctx context.Context, query string, limit int) ([]search.Result, error) {
	return s.results, s.err
}

func doGet(t *testing.T, h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var err error
	c.Request, err = http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	h(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	w := doGet(t, healthHandler(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestRoomExistsHandler(t *testing.T) {
	rooms := store.NewRoomStore(time.Hour, 50)
	code := rooms.CreateRoom("host")

	tests := []struct {
		name   string
		query  string
		exists bool
	}{
		{"live room", string(code), true},
		{"unknown room", "0000", false},
		{"invalid code", "12ab", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, roomExistsHandler(rooms), "/api/room-exists?room="+tt.query)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.exists, decode(t, w)["exists"])
		})
	}
}

func TestRoomChatHandler(t *testing.T) {
	rooms := store.NewRoomStore(time.Hour, 50)
	code := rooms.CreateRoom("host")
	_, ok := rooms.AppendChat(code, "dj", "hello")
	require.True(t, ok)

	w := doGet(t, roomChatHandler(rooms), "/api/room-chat?room="+string(code))
	assert.Equal(t, http.StatusOK, w.Code)
	chat := decode(t, w)["chat"].([]any)
	require.Len(t, chat, 1)

	w = doGet(t, roomChatHandler(rooms), "/api/room-chat?room=bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ROOM", decode(t, w)["error"])

	// Absent room answers an empty history, not an error.
	w = doGet(t, roomChatHandler(rooms), "/api/room-chat?room=0000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["chat"])
}

func TestSearchHandler(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
		target   string
		wantCode int
	}{
		{
			name:     "results",
			provider: &stubProvider{results: []search.Result{{ID: "abc", Title: "Song"}}},
			target:   "/api/yt/search?q=test",
			wantCode: http.StatusOK,
		},
		{
			name:     "empty query short-circuits",
			provider: &stubProvider{err: search.ErrUpstream},
			target:   "/api/yt/search?q=",
			wantCode: http.StatusOK,
		},
		{
			name:     "not configured",
			provider: &stubProvider{err: search.ErrNotConfigured},
			target:   "/api/yt/search?q=test",
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "upstream failure",
			provider: &stubProvider{err: search.ErrUpstream},
			target:   "/api/yt/search?q=test",
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, searchHandler(tt.provider, 8, time.Second), tt.target)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
