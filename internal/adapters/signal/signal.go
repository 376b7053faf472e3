package signal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/app"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/config"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/core"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/store"
)

var ErrBackpressure = errors.New("backpressure")

// Controller is the per-connection protocol handler: the only component
// that knows who is asking. It owns all registry mutation.
type Controller struct {
	Rooms    *store.RoomStore
	Conns    *app.Registry
	Presence *app.Presence
	Cfg      *config.Config
}

func NewController(rooms *store.RoomStore, conns *app.Registry, presence *app.Presence, cfg *config.Config) *Controller {
	return &Controller{Rooms: rooms, Conns: conns, Presence: presence, Cfg: cfg}
}

type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and runs the connection until it drops.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	id := domain.ConnID(uuid.NewString())
	log.Info().Str("module", "signal").Str("conn", string(id)).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}
	if ctl.Cfg != nil && ctl.Cfg.ReadLimit > 0 {
		ws.SetReadLimit(ctl.Cfg.ReadLimit)
	}

	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}

	ctx, cancel := context.WithCancel(ctx)
	ctl.Conns.Bind(id, conn, cancel)

	online := ctl.Presence.Inc()
	ctl.broadcastAll(statsEvent{Type: MsgStatsUpdate, Online: online})

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, id, conn)
}

// disconnect tears down everything the connection touched. Guests of any
// room killed by this departure hear room-closed exactly once, before
// they are unsubscribed.
func (ctl *Controller) disconnect(id domain.ConnID) {
	closed := ctl.Rooms.Leave(id)
	for _, c := range closed {
		ctl.NotifyClosure(c)
	}
	ctl.Conns.Unbind(id)

	online := ctl.Presence.Dec()
	ctl.broadcastAll(statsEvent{Type: MsgStatsUpdate, Online: online})
	log.Info().Str("module", "signal").Str("conn", string(id)).Msg("disconnected")
}

// NotifyClosure tells every remaining member of a deleted room that its
// session is over. Also used by the TTL sweeper.
func (ctl *Controller) NotifyClosure(c store.Closure) {
	for _, member := range c.Members {
		if conn, ok := ctl.Conns.Get(member); ok {
			ctl.sendJSON(conn, roomClosedEvent{Type: MsgRoomClosed})
		}
	}
	log.Info().Str("module", "signal").Str("room", string(c.RoomID)).Int("notified", len(c.Members)).Msg("room closed")
}

// broadcastRoom fans an event out to the room's members, excluding one
// connection (usually the sender, which already applied the change).
func (ctl *Controller) broadcastRoom(roomID domain.RoomID, exclude domain.ConnID, v any) {
	for _, member := range ctl.Rooms.Members(roomID) {
		if member == exclude {
			continue
		}
		if conn, ok := ctl.Conns.Get(member); ok {
			ctl.sendJSON(conn, v)
		}
	}
}

func (ctl *Controller) broadcastAll(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("broadcastAll marshal")
		return
	}
	for _, conn := range ctl.Conns.All() {
		_ = conn.TrySend(b)
	}
}

func (ctl *Controller) sendJSON(c core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}
