package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketConn wraps a gorilla/websocket connection. It is the default
// transport.
type WebSocketConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// DialWebSocket connects to address using gorilla/websocket.
func DialWebSocket(ctx context.Context, address string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return &WebSocketConn{conn: conn}, nil
}

func (c *WebSocketConn) Read(_ context.Context) ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c *WebSocketConn) Write(_ context.Context, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *WebSocketConn) Close() error {
	c.writeMu.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
	c.writeMu.Unlock()
	return c.conn.Close()
}

func (c *WebSocketConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
