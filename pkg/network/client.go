// pkg/network/client.go
package network

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/ggwsim/ggw-server/pkg/config"
	"github.com/ggwsim/ggw-server/pkg/engine"
	"github.com/ggwsim/ggw-server/pkg/logging"
	"github.com/ggwsim/ggw-server/pkg/validation"
)

// Client consumes the server's snapshot stream and sends commands back.
// Connection attempts go through the circuit breaker so a dead server
// fails fast instead of hanging every caller.
type Client struct {
	envCfg  *config.EnvironmentConfig
	logger  *logging.Logger
	service *NetworkService

	conn      net.Conn
	connMu    sync.Mutex
	snapshots chan engine.Snapshot
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient creates a client for the given environment configuration
func NewClient(envCfg *config.EnvironmentConfig, logger *logging.Logger) *Client {
	return &Client{
		envCfg:    envCfg,
		logger:    logger,
		service:   NewNetworkService(envCfg),
		snapshots: make(chan engine.Snapshot, 8),
		done:      make(chan struct{}),
	}
}

// Connect dials the server and starts the snapshot reader
func (c *Client) Connect(ctx context.Context) error {
	err := c.service.ExecuteWithRetry(ctx, func() error {
		conn, dialErr := net.Dial("tcp", c.envCfg.ServerAddress)
		if dialErr != nil {
			return dialErr
		}
		c.connMu.Lock()
		c.conn = conn
		c.connMu.Unlock()
		return nil
	})
	if err != nil {
		return logging.WrapError(err, "failed to connect to %s", c.envCfg.ServerAddress)
	}

	c.logger.Info(ctx, "connected", "address", c.envCfg.ServerAddress)
	go c.readSnapshots(ctx)
	return nil
}

// Snapshots returns the channel of decoded world snapshots. The channel
// closes when the connection drops or Close is called.
func (c *Client) Snapshots() <-chan engine.Snapshot {
	return c.snapshots
}

// SendCommand encodes and writes one command line
func (c *Client) SendCommand(ctx context.Context, cmd Command) error {
	data, err := EncodeCommand(cmd)
	if err != nil {
		return err
	}
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn == nil {
		return fmt.Errorf("not connected")
	}
	return c.service.Execute(ctx, func() error {
		_, writeErr := conn.Write(append(data, '\n'))
		return writeErr
	})
}

// Close tears down the connection and snapshot channel
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.connMu.Lock()
		if c.conn != nil {
			c.conn.Close()
		}
		c.connMu.Unlock()
	})
}

func (c *Client) readSnapshots(ctx context.Context) {
	defer close(c.snapshots)

	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), validation.MaxMessageSize*16)
	for scanner.Scan() {
		select {
		case <-c.done:
			return
		default:
		}
		var snapshot engine.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snapshot); err != nil {
			c.logger.Warn(ctx, "skipping malformed snapshot", "reason", err.Error())
			continue
		}
		select {
		case c.snapshots <- snapshot:
		case <-c.done:
			return
		}
	}
}
