package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// wsPair upgrades one websocket connection and hands both ends to the test.
func wsPair(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	serverConns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverConns <- ws
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverConns:
	case <-time.After(2 * time.Second):
		t.Fatal("server connection never arrived")
	}
	t.Cleanup(func() { server.Close() })

	return server, client
}

func TestConn_UnresponsivePeerFailsRead(t *testing.T) {
	server, _ := wsPair(t)

	// client never reads, so it never answers pings
	conn := NewConn(server, 8, 100*time.Millisecond, 50*time.Millisecond)
	conn.Start()
	defer conn.Close()

	readErr := make(chan error, 1)
	go func() {
		_, _, err := conn.ReadMessage()
		readErr <- err
	}()

	select {
	case err := <-readErr:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("read against a silent peer never timed out")
	}
}

func TestConn_PongsKeepConnectionAlive(t *testing.T) {
	server, client := wsPair(t)

	conn := NewConn(server, 8, 100*time.Millisecond, 50*time.Millisecond)
	conn.Start()
	defer conn.Close()

	// a reading client answers pings with pongs via the default ping handler
	clientGot := make(chan []byte, 1)
	go func() {
		_, payload, err := client.ReadMessage()
		if err == nil {
			clientGot <- payload
		}
	}()

	readErr := make(chan error, 1)
	go func() {
		_, _, err := conn.ReadMessage()
		readErr <- err
	}()

	// well past the initial deadline; pongs must have extended it
	select {
	case err := <-readErr:
		t.Fatalf("read failed while peer was responsive: %v", err)
	case <-time.After(400 * time.Millisecond):
	}

	assert.NoError(t, conn.Send([]byte(`{"type":"pong"}`)))

	select {
	case payload := <-clientGot:
		assert.JSONEq(t, `{"type":"pong"}`, string(payload))
	case <-time.After(2 * time.Second):
		t.Fatal("client never received pushed frame")
	}
}
