// Package client provides a synchronous broker connection speaking the
// v0 wire protocol: one request/response exchange at a time over a
// single TCP connection.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dray-io/kwire/internal/logging"
	"github.com/dray-io/kwire/internal/metrics"
	"github.com/dray-io/kwire/internal/protocol"
	"github.com/dray-io/kwire/internal/wire"
)

// ErrConnBroken is returned by Exchange after a previous exchange left
// the connection in an unknown framing state. A broken connection only
// supports Close; callers reconnect to recover.
var ErrConnBroken = errors.New("client: connection broken")

// Config holds settings for a broker connection.
type Config struct {
	// Addr is the broker address, host:port.
	Addr string

	// ClientID is sent in every request envelope. When empty, a
	// generated id of the form "kwire-<uuid>" is used.
	ClientID string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxFrameSize bounds the declared length of inbound response
	// frames. Zero disables the bound.
	MaxFrameSize int32

	Logger  *logging.Logger
	Metrics *metrics.ExchangeMetrics
	Codec   *metrics.CodecMetrics
}

func (c *Config) withDefaults() Config {
	cfg := *c
	if cfg.ClientID == "" {
		cfg.ClientID = "kwire-" + uuid.NewString()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Global()
	}
	return cfg
}

// Conn is a single broker connection. Exchanges are serialized: the
// protocol has no pipelining at version 0, so a response always belongs
// to the request written immediately before it.
type Conn struct {
	cfg    Config
	conn   net.Conn
	logger *logging.Logger

	mu       sync.Mutex
	nextCorr int32
	err      error // sticky; set when framing state is unknown
}

// Dial connects to the broker named in cfg.
func Dial(ctx context.Context, cfg Config) (*Conn, error) {
	cfg = cfg.withDefaults()

	d := net.Dialer{Timeout: cfg.DialTimeout}
	nc, err := d.DialContext(ctx, "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", cfg.Addr, err)
	}
	return NewConn(nc, cfg), nil
}

// NewConn wraps an established connection. Used by Dial and directly in
// tests over net.Pipe.
func NewConn(nc net.Conn, cfg Config) *Conn {
	cfg = cfg.withDefaults()
	c := &Conn{
		cfg:    cfg,
		conn:   nc,
		logger: cfg.Logger.With("broker", cfg.Addr),
	}
	if cfg.Metrics != nil {
		cfg.Metrics.ConnectionOpened()
	}
	c.logger.Debug("connection opened", "clientId", cfg.ClientID)
	return c
}

// ClientID returns the client id sent with every request.
func (c *Conn) ClientID() string {
	return c.cfg.ClientID
}

// Exchange writes a framed request carrying body and reads the framed
// response into respBody. The correlation id is assigned internally and
// verified against the response echo. Any failure after the request hits
// the wire breaks the connection: the stream position is unknown, so
// subsequent exchanges fail with ErrConnBroken.
func (c *Conn) Exchange(ctx context.Context, body protocol.RequestBody, respBody wire.Field) error {
	apiName := protocol.KeyName(body.APIKey())
	start := time.Now()
	err := c.exchange(ctx, body, respBody)
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.RecordExchange(apiName, err == nil, time.Since(start).Seconds())
	}
	if err != nil {
		c.logger.WithError(err).Error("exchange failed", "api", apiName)
	}
	return err
}

func (c *Conn) exchange(ctx context.Context, body protocol.RequestBody, respBody wire.Field) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return fmt.Errorf("%w: %w", ErrConnBroken, c.err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	corrID := c.nextCorr
	c.nextCorr++

	if err := c.setDeadline(ctx, c.cfg.WriteTimeout); err != nil {
		return err
	}
	if err := protocol.WriteRequestFrame(c.conn, corrID, c.cfg.ClientID, body); err != nil {
		// The request may be partially written; framing is gone.
		return c.broken(fmt.Errorf("writing request: %w", err))
	}
	if c.cfg.Codec != nil {
		c.cfg.Codec.RecordEncode(protocol.RequestFrameSize(corrID, c.cfg.ClientID, body))
	}

	if err := c.setDeadline(ctx, c.cfg.ReadTimeout); err != nil {
		return c.broken(err)
	}
	echoed, err := protocol.ReadResponseFrameLimit(c.conn, respBody, c.cfg.MaxFrameSize)
	if err != nil {
		c.recordDecodeFailure(err)
		return c.broken(fmt.Errorf("reading response: %w", err))
	}
	if echoed != corrID {
		// A stray id means we are reading someone else's response or
		// garbage; nothing downstream can be trusted.
		return c.broken(fmt.Errorf("%w: correlation id %d, want %d", wire.ErrMalformed, echoed, corrID))
	}
	if c.cfg.Codec != nil {
		c.cfg.Codec.RecordDecode(protocol.ResponseFrameSize(respBody))
	}

	c.logger.WithCorrelationID(corrID).Debug("exchange complete", "api", protocol.KeyName(body.APIKey()))
	return nil
}

// broken records err as the sticky connection error and returns it.
// Callers must hold mu.
func (c *Conn) broken(err error) error {
	c.err = err
	return err
}

func (c *Conn) setDeadline(ctx context.Context, timeout time.Duration) error {
	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	return c.conn.SetDeadline(deadline)
}

func (c *Conn) recordDecodeFailure(err error) {
	if c.cfg.Codec == nil {
		return
	}
	switch {
	case errors.Is(err, wire.ErrMalformed):
		c.cfg.Codec.RecordDecodeFailure(metrics.FailureMalformed)
	case errors.Is(err, wire.ErrTruncated):
		c.cfg.Codec.RecordDecodeFailure(metrics.FailureTruncated)
	default:
		c.cfg.Codec.RecordDecodeFailure(metrics.FailureIO)
	}
}

// Broken reports whether a previous exchange left the connection
// unusable.
func (c *Conn) Broken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err != nil
}

// Close closes the underlying connection. Safe to call on a broken
// connection.
func (c *Conn) Close() error {
	err := c.conn.Close()
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.ConnectionClosed()
	}
	c.logger.Debug("connection closed")
	return err
}

// Metadata requests cluster metadata for the named topics. An empty
// topic list asks for all topics.
func (c *Conn) Metadata(ctx context.Context, topics []string) (*protocol.MetadataResponse, error) {
	req := protocol.MetadataRequest{TopicNames: toStringArray(topics)}
	var resp protocol.MetadataResponse
	if err := c.Exchange(ctx, &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func toStringArray(in []string) protocol.StringArray {
	out := make(protocol.StringArray, len(in))
	for i, s := range in {
		out[i] = wire.String(s)
	}
	return out
}

var _ io.Closer = (*Conn)(nil)
