package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouTube_MapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test query", r.URL.Query().Get("q"))
		assert.Equal(t, "8", r.URL.Query().Get("maxResults"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":{"videoId":"abc123"},"snippet":{"title":"Song","channelTitle":"Artist","thumbnails":{"high":{"url":"http://img/hi.jpg"}}}}]}`))
	}))
	defer srv.Close()

	yt := NewYouTube("key", srv.Client())
	yt.BaseURL = srv.URL

	results, err := yt.Search(context.Background(), "test query", 8)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc123", results[0].ID)
	assert.Equal(t, "Song", results[0].Title)
	assert.Equal(t, "Artist", results[0].Author)
	assert.Equal(t, "http://img/hi.jpg", results[0].Thumbnail)
}

func TestYouTube_NotConfigured(t *testing.T) {
	yt := NewYouTube("", nil)
	_, err := yt.Search(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestYouTube_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	yt := NewYouTube("key", srv.Client())
	yt.BaseURL = srv.URL

	_, err := yt.Search(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestYouTube_LimitCapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("maxResults"))
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	yt := NewYouTube("key", srv.Client())
	yt.BaseURL = srv.URL

	_, err := yt.Search(context.Background(), "q", 100)
	require.NoError(t, err)
}

func TestJamendo_MapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cid", r.URL.Query().Get("client_id"))
		_, _ = w.Write([]byte(`{"results":[{"id":1421,"name":"Track","artist_name":"Band","duration":212,"audio":"http://audio/t.mp3"}]}`))
	}))
	defer srv.Close()

	j := NewJamendo("cid", srv.Client())
	j.BaseURL = srv.URL

	results, err := j.Search(context.Background(), "q", 12)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1421", results[0].ID)
	assert.Equal(t, "Track", results[0].Title)
	assert.Equal(t, "Band", results[0].Author)
	assert.Equal(t, 212, results[0].Duration)
	assert.Equal(t, "http://audio/t.mp3", results[0].Audio)
}

func TestJamendo_BestEffort(t *testing.T) {
	// Unconfigured and upstream errors both degrade to empty results.
	j := NewJamendo("", nil)
	results, err := j.Search(context.Background(), "q", 12)
	require.NoError(t, err)
	assert.Empty(t, results)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	j = NewJamendo("cid", srv.Client())
	j.BaseURL = srv.URL
	results, err = j.Search(context.Background(), "q", 12)
	require.NoError(t, err)
	assert.Empty(t, results)
}
