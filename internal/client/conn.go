// Package client owns the single connection to the chat server: lifecycle,
// outbound event serialization, and inbound decode-and-deliver.
package client

import "context"

// Conn abstracts one bidirectional WebSocket connection. Implementations
// exist for gorilla/websocket (default), nhooyr.io/websocket (ws
// subpackage), and gobwas/ws.
type Conn interface {
	// Read reads a single message frame (JSON bytes).
	Read(ctx context.Context) ([]byte, error)

	// Write sends a single message frame (JSON bytes).
	Write(ctx context.Context, data []byte) error

	// Close closes the connection.
	Close() error

	// RemoteAddr returns the server address for logging.
	RemoteAddr() string
}

// Dialer establishes a Conn to the server at address.
type Dialer func(ctx context.Context, address string) (Conn, error)
