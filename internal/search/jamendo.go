package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	jamendoBaseURL  = "https://api.jamendo.com/v3.0/tracks/"
	jamendoMaxLimit = 50
)

// Jamendo is the fallback audio search; returns empty results rather than
// errors when unconfigured or the upstream misbehaves, as the UI treats it
// as best-effort.
type Jamendo struct {
	ClientID string
	BaseURL  string
	Client   *http.Client
}

func NewJamendo(clientID string, client *http.Client) *Jamendo {
	if client == nil {
		client = http.DefaultClient
	}
	return &Jamendo{ClientID: clientID, BaseURL: jamendoBaseURL, Client: client}
}

func (j *Jamendo) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if j.ClientID == "" {
		return []Result{}, nil
	}
	if limit <= 0 || limit > jamendoMaxLimit {
		limit = jamendoMaxLimit
	}

	q := url.Values{}
	q.Set("client_id", j.ClientID)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", "0")
	q.Set("fuzzyquery", query)
	q.Set("include", "musicinfo")
	q.Set("audioformat", "mp32")
	q.Set("order", "popularity_total")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := j.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jamendo search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []Result{}, nil
	}

	var body struct {
		Results []struct {
			ID         json.Number `json:"id"`
			Name       string      `json:"name"`
			ArtistName string      `json:"artist_name"`
			Duration   int         `json:"duration"`
			Audio      string      `json:"audio"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return []Result{}, nil
	}

	results := make([]Result, 0, len(body.Results))
	for _, t := range body.Results {
		results = append(results, Result{
			ID:       t.ID.String(),
			Title:    t.Name,
			Author:   t.ArtistName,
			Duration: t.Duration,
			Audio:    t.Audio,
		})
	}
	return results, nil
}
