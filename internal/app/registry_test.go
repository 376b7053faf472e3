package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/core"
)

type fakeConn struct{ closed bool }

func (f *fakeConn) TrySend(core.Frame) error { return nil }
func (f *fakeConn) Close()                   { f.closed = true }

func TestRegistry_BindGetUnbind(t *testing.T) {
	r := NewRegistry()
	conn := &fakeConn{}

	r.Bind("c1", conn, nil)
	got, ok := r.Get("c1")
	require.True(t, ok)
	assert.Same(t, conn, got.(*fakeConn))

	r.Unbind("c1")
	_, ok = r.Get("c1")
	assert.False(t, ok)
}

func TestRegistry_All(t *testing.T) {
	r := NewRegistry()
	r.Bind("a", &fakeConn{}, nil)
	r.Bind("b", &fakeConn{}, nil)
	assert.Len(t, r.All(), 2)
}

func TestRegistry_Cancel(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	r.Bind("c1", &fakeConn{}, cancel)

	require.True(t, r.Cancel("c1"))
	<-ctx.Done()

	assert.False(t, r.Cancel("nope"))
}

func TestPresence(t *testing.T) {
	p := NewPresence()
	assert.EqualValues(t, 1, p.Inc())
	assert.EqualValues(t, 2, p.Inc())
	assert.EqualValues(t, 1, p.Dec())
	assert.EqualValues(t, 1, p.Online())
}
