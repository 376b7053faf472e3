package http

import (
	"context"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/adapters/signal"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/config"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/search"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/store"
)

func genClientToken() string {
	return uuid.NewString()
}

func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

// CORSMiddleware mirrors the allowed-origin policy of the config; "*"
// means any origin.
func CORSMiddleware(allowed string) gin.HandlerFunc {
	origins := strings.Split(allowed, ",")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed == "*" {
			c.Header("Access-Control-Allow-Origin", "*")
		} else {
			for _, o := range origins {
				if strings.TrimSpace(o) == origin {
					c.Header("Access-Control-Allow-Origin", origin)
					c.Header("Access-Control-Allow-Credentials", "true")
					break
				}
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, ctl *signal.Controller, rooms *store.RoomStore, yt, jam search.Provider) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware(cfg.AllowedOrigin))

	cookieStore := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("BestSyncSessions", cookieStore))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})
	r.GET("/health", healthHandler())

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	api := r.Group("/api")

	api.GET("/ws", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("ct", c.GetString("client_token")).Msg("ws endpoint hit")
		ctl.HandleSignal(ctx, c)
	})

	api.GET("/room-exists", roomExistsHandler(rooms))
	api.GET("/room-chat", roomChatHandler(rooms))
	api.GET("/yt/search", searchHandler(yt, 8, cfg.SearchTimeout))
	api.GET("/search", searchHandler(jam, 12, cfg.SearchTimeout))

	return r
}
