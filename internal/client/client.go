package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/omochice/ws-chat-client/pkg/protocol"
)

// ErrNotConnected is returned by Send when no connection is established.
var ErrNotConnected = errors.New("not connected to server")

// Client manages the single connection to the chat server. It serializes
// outbound events, decodes inbound ones onto the Events channel, and nulls
// out the connection handle on close so subsequent sends fail fast.
//
// There is no automatic retry or reconnection: recovery is an explicit
// caller action on a fresh Client.
type Client struct {
	id         string
	address    string
	username   string
	dial       Dialer
	conn       Conn
	events     chan protocol.Event
	mu         sync.RWMutex
	done       chan struct{}
	doneOnce   sync.Once
	wg         sync.WaitGroup
	isShutdown bool
}

// Option configures a Client.
type Option func(*Client)

// WithDialer selects the transport used to reach the server.
func WithDialer(dial Dialer) Option {
	return func(c *Client) {
		c.dial = dial
	}
}

// New creates a Client for the server at address, identifying as username.
func New(address, username string, opts ...Option) *Client {
	c := &Client{
		id:       uuid.NewString(),
		address:  address,
		username: username,
		dial:     DialWebSocket,
		events:   make(chan protocol.Event, 10),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Username returns the username this client identifies as.
func (c *Client) Username() string { return c.username }

// Connect establishes the transport and immediately sends the
// connection_request handshake. The server answers with either a
// connection_response or a connection_reject on the Events channel.
func (c *Client) Connect(ctx context.Context) error {
	if err := protocol.ValidateUsername(c.username); err != nil {
		return err
	}

	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return errors.New("already connected")
	}
	c.mu.Unlock()

	conn, err := c.dial(ctx, c.address)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	log.Printf("Client %s: connected to %s", c.id, conn.RemoteAddr())

	if err := c.Send(protocol.NewConnectionRequest(c.username)); err != nil {
		c.teardown()
		return fmt.Errorf("failed to send connection request: %w", err)
	}

	c.wg.Add(1)
	go c.receiveLoop()

	return nil
}

// Disconnect closes the connection and stops the receive loop. It is safe
// to call more than once and without a prior Connect.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if c.isShutdown {
		c.mu.Unlock()
		return
	}
	c.isShutdown = true
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	c.doneOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

// IsConnected reports whether the client holds an open connection.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil
}

// Events returns the channel of decoded inbound events. The channel closes
// when the connection is torn down.
func (c *Client) Events() <-chan protocol.Event {
	return c.events
}

// Send encodes and transmits one event. Sending while disconnected returns
// ErrNotConnected wrapped with the event's type; it never panics and never
// silently drops.
func (c *Client) Send(ev protocol.Event) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("cannot send %s event: %w", ev.Type(), ErrNotConnected)
	}

	data, err := protocol.Encode(ev)
	if err != nil {
		return err
	}

	if err := conn.Write(context.Background(), data); err != nil {
		return fmt.Errorf("failed to send %s event: %w", ev.Type(), err)
	}
	return nil
}

// teardown nulls out the connection handle so further sends fail fast.
func (c *Client) teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// receiveLoop continuously reads, decodes, and delivers inbound events.
// Malformed payloads are logged and skipped; read errors end the loop and
// close the Events channel.
func (c *Client) receiveLoop() {
	defer c.wg.Done()
	defer close(c.events)

	for {
		select {
		case <-c.done:
			return
		default:
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn == nil {
			return
		}

		data, err := conn.Read(context.Background())
		if err != nil {
			select {
			case <-c.done:
			default:
				log.Printf("Client %s: read error: %v", c.id, err)
				c.teardown()
			}
			return
		}

		ev, err := protocol.Decode(data)
		if err != nil {
			log.Printf("Client %s: failed to decode event: %v", c.id, err)
			continue
		}

		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}
