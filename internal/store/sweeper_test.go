package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
)

func TestSweeper_NotifiesClosures(t *testing.T) {
	s := NewRoomStore(time.Millisecond, 50)
	code := s.CreateRoom("host")

	closures := make(chan Closure, 1)
	sw := &Sweeper{
		Store:    s,
		Interval: 5 * time.Millisecond,
		OnClose:  func(c Closure) { closures <- c },
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sw.Run(ctx)

	select {
	case c := <-closures:
		assert.Equal(t, code, c.RoomID)
		assert.Contains(t, c.Members, domain.ConnID("host"))
	case <-time.After(time.Second):
		t.Fatal("sweeper never expired the idle room")
	}
	require.False(t, s.Exists(code))
}
