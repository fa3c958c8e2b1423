// Package ws provides an alternative transport backed by
// nhooyr.io/websocket.
package ws

import (
	"context"
	"fmt"

	"github.com/omochice/ws-chat-client/internal/client"
	"nhooyr.io/websocket"
)

// Conn wraps an nhooyr.io/websocket connection.
type Conn struct {
	conn    *websocket.Conn
	address string
}

// Dial connects to address using nhooyr.io/websocket.
func Dial(ctx context.Context, address string) (client.Conn, error) {
	conn, _, err := websocket.Dial(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return &Conn{conn: conn, address: address}, nil
}

func (c *Conn) Read(ctx context.Context) ([]byte, error) {
	_, data, err := c.conn.Read(ctx)
	return data, err
}

func (c *Conn) Write(ctx context.Context, data []byte) error {
	return c.conn.Write(ctx, websocket.MessageText, data)
}

func (c *Conn) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}

func (c *Conn) RemoteAddr() string {
	return c.address
}
