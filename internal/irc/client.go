package irc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/chatparrot/internal/metrics"
	"github.com/pscheid92/chatparrot/internal/platform/retry"
	"golang.org/x/time/rate"
)

const (
	handshakeTimeout = 10 * time.Second
	writeDeadline    = 5 * time.Second

	reconnectInitial = 2 * time.Second
	reconnectMax     = time.Minute

	// Twitch drops sessions that exceed 20 outbound messages per 30 seconds.
	sayRate  = rate.Limit(20.0 / 30.0)
	sayBurst = 20
)

// errReconnect ends a session when the server asks us to redial.
var errReconnect = errors.New("server requested reconnect")

// Handler receives every chat message the read loop parses.
type Handler func(Message)

// Client is the Twitch chat session. Run keeps exactly one session alive;
// Say writes into the current one. Both sides share the write mutex, so a
// reconnect never interleaves with an outbound message.
type Client struct {
	url      string
	nick     string
	token    string
	channels []string

	handler Handler
	clock   clockwork.Clock
	backoff *retry.Backoff
	limiter *rate.Limiter

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
}

// NewClient prepares a chat client for the given channels. Messages go to
// handler from the session's read loop, one at a time.
func NewClient(url, nick, token string, channels []string, handler Handler, clock clockwork.Clock) *Client {
	return &Client{
		url:      url,
		nick:     nick,
		token:    token,
		channels: channels,
		handler:  handler,
		clock:    clock,
		backoff:  retry.NewBackoff(reconnectInitial, reconnectMax),
		limiter:  rate.NewLimiter(sayRate, sayBurst),
	}
}

// Run dials the chat gateway and serves sessions until ctx is cancelled.
// Session errors are not fatal: the client waits out a backoff and redials.
func (c *Client) Run(ctx context.Context) error {
	for {
		err := c.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := c.backoff.Next()
		slog.Warn("Chat session ended, reconnecting", "error", err, "wait", wait)
		metrics.ChatReconnectsTotal.Inc()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.clock.After(wait):
		}
	}
}

// session runs one connection from dial to first failure.
func (c *Client) session(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dialing chat gateway: %w", err)
	}
	defer conn.Close()

	c.setConn(conn)
	defer c.dropConn()

	if err := c.login(); err != nil {
		return err
	}

	// ReadMessage has no context support; close the connection to unblock
	// it when the process shuts down.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading chat frame: %w", err)
		}

		// A frame may carry several CRLF-terminated lines.
		for _, raw := range strings.Split(string(data), "\r\n") {
			if raw == "" {
				continue
			}
			if err := c.handleLine(raw); err != nil {
				return err
			}
		}
	}
}

func (c *Client) login() error {
	for _, cmd := range []string{
		"PASS " + c.token,
		"NICK " + c.nick,
		"JOIN " + strings.Join(c.channels, ","),
	} {
		if err := c.send(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) handleLine(raw string) error {
	ln, err := parseLine(raw)
	if err != nil {
		slog.Debug("Skipping unparsable chat line", "error", err)
		return nil
	}

	switch ln.command {
	case "PING":
		pong := "PONG"
		if ln.trailing != "" {
			pong += " :" + ln.trailing
		}
		return c.send(pong)
	case "PRIVMSG":
		c.dispatch(ln)
	case "RECONNECT":
		return errReconnect
	case "001":
		c.markConnected()
		c.backoff.Reset()
		slog.Info("Chat session established", "nick", c.nick, "channels", c.channels)
	case "NOTICE":
		slog.Warn("Chat server notice", "text", ln.trailing)
	}
	return nil
}

func (c *Client) dispatch(ln line) {
	if c.handler == nil || len(ln.params) == 0 {
		return
	}
	c.handler(Message{
		Channel: ln.params[0],
		Nick:    ln.nick(),
		Text:    ln.trailing,
		Time:    c.clock.Now(),
	})
}

// Say sends text into a channel. It fails fast when the session is down or
// the outbound limit is spent; there is no queue and no retry.
func (c *Client) Say(ctx context.Context, channel, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return fmt.Errorf("chat session is down")
	}
	if !c.limiter.Allow() {
		return fmt.Errorf("outbound message limit reached")
	}
	return c.sendLocked("PRIVMSG " + channel + " :" + text)
}

// Connected reports whether the current session is past login.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) send(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendLocked(line)
}

func (c *Client) sendLocked(line string) error {
	if c.conn == nil {
		return fmt.Errorf("no active chat connection")
	}
	_ = c.conn.SetWriteDeadline(c.clock.Now().Add(writeDeadline))
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(line+"\r\n")); err != nil {
		verb, _, _ := strings.Cut(line, " ")
		return fmt.Errorf("writing %s line: %w", verb, err)
	}
	return nil
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = conn
}

func (c *Client) markConnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
	metrics.ChatConnected.Set(1)
}

func (c *Client) dropConn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = nil
	c.connected = false
	metrics.ChatConnected.Set(0)
}
