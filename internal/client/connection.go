package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// RawConn wraps a plain net.Conn speaking WebSocket frames via gobwas/ws.
// Reads go through rw so frames the server sent together with the handshake
// response are consumed before the conn itself.
type RawConn struct {
	conn    net.Conn
	rw      io.ReadWriter
	readMu  sync.Mutex
	writeMu sync.Mutex
}

// DialRaw connects to address using gobwas/ws.
func DialRaw(ctx context.Context, address string) (Conn, error) {
	conn, br, _, err := ws.Dial(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	if br == nil {
		return newRawConn(conn, nil), nil
	}
	return newRawConn(conn, br), nil
}

// newRawConn chains any handshake-buffered bytes in front of conn.
func newRawConn(conn net.Conn, buffered io.Reader) *RawConn {
	c := &RawConn{conn: conn}
	c.rw = readWriter{Reader: conn, Writer: conn}
	if buffered != nil {
		c.rw = readWriter{Reader: io.MultiReader(buffered, conn), Writer: conn}
	}
	return c
}

type readWriter struct {
	io.Reader
	io.Writer
}

func (c *RawConn) Read(_ context.Context) ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()
	return wsutil.ReadServerText(c.rw)
}

func (c *RawConn) Write(_ context.Context, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return wsutil.WriteClientText(c.conn, data)
}

func (c *RawConn) Close() error {
	c.writeMu.Lock()
	_ = wsutil.WriteClientMessage(c.conn, ws.OpClose, nil)
	c.writeMu.Unlock()
	return c.conn.Close()
}

func (c *RawConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
