package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	youtubeBaseURL  = "https://www.googleapis.com/youtube/v3/search"
	youtubeMaxLimit = 25
)

// YouTube queries the Data API v3 search endpoint.
type YouTube struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewYouTube(apiKey string, client *http.Client) *YouTube {
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTube{APIKey: apiKey, BaseURL: youtubeBaseURL, Client: client}
}

func (y *YouTube) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if y.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if limit <= 0 || limit > youtubeMaxLimit {
		limit = youtubeMaxLimit
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(limit))
	q.Set("key", y.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := y.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Str("module", "search.youtube").Int("status", resp.StatusCode).Msg("YouTube search failed")
		return nil, ErrUpstream
	}

	var body struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				ChannelTitle string `json:"channelTitle"`
				Thumbnails   struct {
					High    struct{ URL string } `json:"high"`
					Default struct{ URL string } `json:"default"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("youtube search decode: %w", err)
	}

	results := make([]Result, 0, len(body.Items))
	for _, it := range body.Items {
		thumb := it.Snippet.Thumbnails.High.URL
		if thumb == "" {
			thumb = it.Snippet.Thumbnails.Default.URL
		}
		results = append(results, Result{
			ID:        it.ID.VideoID,
			Title:     it.Snippet.Title,
			Author:    it.Snippet.ChannelTitle,
			Thumbnail: thumb,
		})
	}
	return results, nil
}
