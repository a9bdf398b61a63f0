package chat

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// scriptedConn feeds a fixed sequence of inbound frames to a session and
// records everything pushed back.
type scriptedConn struct {
	fakeChannel
	inbound [][]byte
	pos     int
	closed  bool
}

func (c *scriptedConn) ReadMessage() (int, []byte, error) {
	if c.pos >= len(c.inbound) {
		return 0, nil, io.EOF
	}
	data := c.inbound[c.pos]
	c.pos++
	return 1, data, nil
}

func (c *scriptedConn) Close() {
	c.closed = true
}

func TestSession_RegistersAndDeregisters(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	conn := &scriptedConn{inbound: [][]byte{[]byte(`{"type":"ping"}`)}}
	session := NewSession("alice", conn, registry, router)

	session.Run(context.Background())

	assert.False(t, registry.IsOnline("alice"), "session exit must deregister")
	assert.True(t, conn.closed)

	frames := conn.decoded(t)
	if assert.Len(t, frames, 1) {
		assert.Equal(t, "pong", frames[0]["type"])
	}
}

func TestSession_SequentialDispatch(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	conn := &scriptedConn{inbound: [][]byte{
		[]byte(`{"type":"ping"}`),
		[]byte(`{"type":"check_online","users":["bob"]}`),
		[]byte(`{"type":"ping"}`),
	}}
	session := NewSession("alice", conn, registry, router)
	session.Run(context.Background())

	frames := conn.decoded(t)
	if assert.Len(t, frames, 3) {
		assert.Equal(t, "pong", frames[0]["type"])
		assert.Equal(t, "online_status", frames[1]["type"])
		assert.Equal(t, "pong", frames[2]["type"])
	}
}

func TestSession_MalformedFrameClosesSession(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	conn := &scriptedConn{inbound: [][]byte{
		[]byte(`not json at all`),
		[]byte(`{"type":"ping"}`), // must never be reached
	}}
	session := NewSession("alice", conn, registry, router)
	session.Run(context.Background())

	assert.False(t, registry.IsOnline("alice"))
	assert.True(t, conn.closed)

	frames := conn.decoded(t)
	if assert.Len(t, frames, 1) {
		assert.Equal(t, "error", frames[0]["type"])
	}
}

func TestSession_InvalidPayloadKeepsSessionOpen(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	// A recognized kind with a missing field is rejected per-frame; the
	// session keeps serving subsequent frames.
	conn := &scriptedConn{inbound: [][]byte{
		[]byte(`{"type":"message","to_user":"bob"}`),
		[]byte(`{"type":"ping"}`),
	}}
	session := NewSession("alice", conn, registry, router)
	session.Run(context.Background())

	frames := conn.decoded(t)
	if assert.Len(t, frames, 2) {
		assert.Equal(t, "error", frames[0]["type"])
		assert.Equal(t, "pong", frames[1]["type"])
	}
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	conn := &scriptedConn{}
	session := NewSession("alice", conn, registry, router)
	registry.Register("alice", conn)

	session.Close()
	session.Close()

	assert.False(t, registry.IsOnline("alice"))
}

func TestSession_CloseDoesNotEvictReplacement(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	oldConn := &scriptedConn{}
	oldSession := NewSession("alice", oldConn, registry, router)
	registry.Register("alice", oldConn)

	// A reconnect replaces the registry entry before the old session
	// finishes tearing down.
	newConn := &scriptedConn{}
	registry.Register("alice", newConn)

	oldSession.Close()

	assert.True(t, registry.IsOnline("alice"), "late close of a replaced session must not deregister the new one")
}

func TestSession_ReadErrorDeregisters(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	conn := &scriptedConn{} // ReadMessage returns io.EOF immediately
	session := NewSession("alice", conn, registry, router)

	done := make(chan struct{})
	go func() {
		session.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session did not exit on read error")
	}

	assert.False(t, registry.IsOnline("alice"))
}

// errorConn fails reads with a transport error rather than EOF.
type errorConn struct {
	scriptedConn
}

func (c *errorConn) ReadMessage() (int, []byte, error) {
	return 0, nil, errors.New("connection reset by peer")
}

func TestSession_TransportErrorDeregisters(t *testing.T) {
	registry := NewRegistry()
	store := new(mockStore)
	router := NewRouter(registry, store)

	conn := &errorConn{}
	session := NewSession("bob", conn, registry, router)
	session.Run(context.Background())

	assert.False(t, registry.IsOnline("bob"))
	assert.True(t, conn.closed)
}
