package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn wraps a websocket and serializes outbound writes through a buffered
// channel so any goroutine may push to it. The read side stays with the
// owning session, which is the sole reader.
type Conn struct {
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once

	writeTimeout time.Duration
	pingInterval time.Duration
	pongWait     time.Duration
}

// NewConn constructs a Conn around an upgraded websocket.
func NewConn(ws *websocket.Conn, bufferSize int, writeTimeout, pingInterval time.Duration) *Conn {
	return &Conn{
		ws:           ws,
		send:         make(chan []byte, bufferSize),
		done:         make(chan struct{}),
		writeTimeout: writeTimeout,
		pingInterval: pingInterval,
		// must exceed pingInterval or healthy peers get cut off between pings
		pongWait: 2 * pingInterval,
	}
}

// Start launches the write loop and arms the read deadline. Each pong from
// the peer pushes the deadline forward; a half-open peer that stops answering
// pings fails the next read instead of lingering until TCP notices.
// It must be called exactly once per connection.
func (c *Conn) Start() {
	_ = c.ws.SetReadDeadline(time.Now().Add(c.pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.pongWait))
	})
	go c.writeLoop()
}

// Send enqueues payload for delivery. If the client is slow and the buffer
// fills up, the connection is closed to keep backpressure bounded.
func (c *Conn) Send(payload []byte) error {
	select {
	case <-c.done:
		return errors.New("connection closed")
	case c.send <- payload:
		return nil
	default:
		c.Close()
		return errors.New("send buffer full")
	}
}

// ReadMessage blocks for the next inbound frame
func (c *Conn) ReadMessage() (int, []byte, error) {
	return c.ws.ReadMessage()
}

// Close terminates the connection and stops the write loop. Safe to call
// more than once.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
		deadline := time.Now().Add(c.writeTimeout)
		_ = c.ws.SetWriteDeadline(deadline)
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = c.ws.Close()
	})
}

func (c *Conn) writeLoop() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			if err := c.write(websocket.TextMessage, payload); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

func (c *Conn) write(messageType int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}
	return c.ws.WriteMessage(messageType, payload)
}
