// Package search holds the thin clients for the external track-search
// providers. Nothing here touches room state.
package search

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("search provider not configured")
	ErrUpstream      = errors.New("upstream search failed")
)

// Result is the provider-neutral shape handed to the client UI.
type Result struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}
