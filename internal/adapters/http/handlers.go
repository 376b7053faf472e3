package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/search"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/store"
)

var startedAt = time.Now()

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(startedAt).Seconds(),
		})
	}
}

// roomExistsHandler is the pre-navigation check the join page uses. The
// store reference is injected; no ambient globals.
func roomExistsHandler(rooms *store.RoomStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.Query("room"))
		if !domain.ValidCode(code) {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"exists": rooms.Exists(domain.RoomID(code))})
	}
}

func roomChatHandler(rooms *store.RoomStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.Query("room"))
		if !domain.ValidCode(code) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_ROOM"})
			return
		}
		chat, ok := rooms.Chat(domain.RoomID(code))
		if !ok {
			chat = []domain.ChatMessage{}
		}
		c.JSON(http.StatusOK, gin.H{"chat": chat})
	}
}

func searchHandler(p search.Provider, defaultLimit int, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			c.JSON(http.StatusOK, gin.H{"results": []search.Result{}})
			return
		}
		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				limit = n
			}
		}

		ctx := c.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		results, err := p.Search(ctx, q, limit)
		switch {
		case errors.Is(err, search.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "SEARCH_NOT_CONFIGURED"})
		case errors.Is(err, search.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "SEARCH_FAILED"})
		case err != nil:
			log.Error().Err(err).Str("module", "adapters.http").Msg("search error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": domain.CodeInternalError})
		default:
			c.JSON(http.StatusOK, gin.H{"results": results})
		}
	}
}
