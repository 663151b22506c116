// pkg/network/server.go
package network

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/ggwsim/ggw-server/pkg/config"
	"github.com/ggwsim/ggw-server/pkg/engine"
	"github.com/ggwsim/ggw-server/pkg/event"
	"github.com/ggwsim/ggw-server/pkg/interior"
	"github.com/ggwsim/ggw-server/pkg/logging"
	"github.com/ggwsim/ggw-server/pkg/validation"
)

// Server broadcasts world snapshots to every connected client and feeds
// their commands into the simulation. One goroutine owns the world; the
// per-connection readers only push onto the command channel.
type Server struct {
	world     *engine.World
	envCfg    *config.EnvironmentConfig
	logger    *logging.Logger
	validator *validation.MessageValidator

	listener net.Listener
	clients  map[uint64]*serverClient
	clientMu sync.RWMutex
	nextID   uint64

	cmdCh     chan clientCommand
	timeScale float64

	running  bool
	runMu    sync.Mutex
	done     chan struct{}
	lastTick time.Time
	tickMu   sync.Mutex
}

type serverClient struct {
	id   uint64
	conn net.Conn
	send chan []byte
}

type clientCommand struct {
	clientID uint64
	cmd      Command
}

// NewServer creates a server around an already-populated world
func NewServer(world *engine.World, envCfg *config.EnvironmentConfig, logger *logging.Logger) *Server {
	return &Server{
		world:     world,
		envCfg:    envCfg,
		logger:    logger,
		validator: validation.NewMessageValidator(envCfg.CommandsPerMinute),
		clients:   make(map[uint64]*serverClient),
		cmdCh:     make(chan clientCommand, 256),
		timeScale: 1.0,
		done:      make(chan struct{}),
	}
}

// TimeScale returns the current simulation speed multiplier
func (s *Server) TimeScale() float64 {
	return s.timeScale
}

// ListenerAddress returns the bound address, or "" before Start
func (s *Server) ListenerAddress() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// LastTick returns when the simulation loop last completed a tick
func (s *Server) LastTick() time.Time {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	return s.lastTick
}

// Start begins listening and runs the simulation loop until ctx is
// cancelled or Stop is called
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.envCfg.ServerAddress)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	s.listener = listener

	s.runMu.Lock()
	s.running = true
	s.runMu.Unlock()

	s.world.Events.Publish(event.NewBodyEvent(event.ServerStarted, s, 0, ""))
	s.logger.Info(ctx, "server listening",
		"address", s.envCfg.ServerAddress,
		"snapshot_interval", s.envCfg.SnapshotInterval,
	)

	go s.acceptConnections(ctx)
	go s.simulationLoop(ctx)

	return nil
}

// Stop shuts down the listener, every client connection, and the
// simulation loop
func (s *Server) Stop() {
	s.runMu.Lock()
	if !s.running {
		s.runMu.Unlock()
		return
	}
	s.running = false
	s.runMu.Unlock()

	close(s.done)
	if s.listener != nil {
		s.listener.Close()
	}

	s.clientMu.Lock()
	for _, client := range s.clients {
		client.conn.Close()
		close(client.send)
	}
	s.clients = make(map[uint64]*serverClient)
	s.clientMu.Unlock()

	s.validator.Close()
	s.world.Events.Publish(event.NewBodyEvent(event.ServerStopped, s, 0, ""))
}

func (s *Server) isRunning() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.running
}

func (s *Server) acceptConnections(ctx context.Context) {
	for s.isRunning() {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.isRunning() {
				s.logger.Error(ctx, "failed to accept connection", err)
			}
			continue
		}

		s.clientMu.RLock()
		count := len(s.clients)
		s.clientMu.RUnlock()
		if count >= s.envCfg.MaxClients {
			s.logger.Warn(ctx, "rejecting connection, server full",
				"max_clients", s.envCfg.MaxClients,
			)
			conn.Close()
			continue
		}

		client := s.addClient(conn)
		s.world.Events.Publish(event.NewBodyEvent(event.ClientJoined, s, client.id, ""))
		s.logger.Info(ctx, "client connected",
			"client_id", client.id,
			"remote", conn.RemoteAddr().String(),
		)

		go s.readLoop(ctx, client)
		go s.writeLoop(client)
	}
}

func (s *Server) addClient(conn net.Conn) *serverClient {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()
	s.nextID++
	client := &serverClient{
		id:   s.nextID,
		conn: conn,
		send: make(chan []byte, 32),
	}
	s.clients[client.id] = client
	return client
}

func (s *Server) removeClient(ctx context.Context, client *serverClient) {
	s.clientMu.Lock()
	if _, ok := s.clients[client.id]; !ok {
		s.clientMu.Unlock()
		return
	}
	delete(s.clients, client.id)
	s.clientMu.Unlock()

	client.conn.Close()
	close(client.send)
	s.world.Events.Publish(event.NewBodyEvent(event.ClientLeft, s, client.id, ""))
	s.logger.Info(ctx, "client disconnected", "client_id", client.id)
}

// readLoop parses newline-delimited commands from one client
func (s *Server) readLoop(ctx context.Context, client *serverClient) {
	defer s.removeClient(ctx, client)

	clientKey := fmt.Sprintf("client-%d", client.id)
	scanner := bufio.NewScanner(client.conn)
	scanner.Buffer(make([]byte, 4096), validation.MaxMessageSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := s.validator.ValidateMessage(line, clientKey); err != nil {
			s.logger.Warn(ctx, "rejected command",
				"client_id", client.id,
				"reason", err.Error(),
			)
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			s.logger.Warn(ctx, "unparseable command",
				"client_id", client.id,
				"reason", err.Error(),
			)
			continue
		}
		select {
		case s.cmdCh <- clientCommand{clientID: client.id, cmd: cmd}:
		case <-s.done:
			return
		}
	}
}

// writeLoop pushes queued snapshot lines to one client. Clients that
// fall behind are dropped rather than blocking the broadcast.
func (s *Server) writeLoop(client *serverClient) {
	for data := range client.send {
		if _, err := client.conn.Write(data); err != nil {
			client.conn.Close()
			return
		}
	}
}

// simulationLoop is the authoritative tick: drain commands, advance the
// world by scaled wall time, detect collisions, broadcast one snapshot.
func (s *Server) simulationLoop(ctx context.Context) {
	ticker := time.NewTicker(s.envCfg.SnapshotInterval)
	defer ticker.Stop()

	lastReal := time.Now()
	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			realDt := now.Sub(lastReal).Seconds()
			lastReal = now
			s.Tick(ctx, realDt)
		}
	}
}

// Tick runs one full simulation step and broadcast. Exposed so the
// stdio front end can drive the same loop without a listener.
func (s *Server) Tick(ctx context.Context, realDt float64) []byte {
	s.tickMu.Lock()
	s.lastTick = time.Now()
	s.tickMu.Unlock()

	s.drainCommands(ctx)

	simDt := s.timeScale * realDt
	if simDt > s.envCfg.MaxSimDeltaS {
		simDt = s.envCfg.MaxSimDeltaS
	}
	if simDt < 0 {
		simDt = 0
	}

	s.world.Step(simDt)
	for _, collision := range s.world.DetectCollisions(simDt) {
		s.world.Events.Publish(event.NewCollisionEvent(s, collision.BodyA, collision.BodyB, collision.Time))
	}

	snapshot := s.world.BuildSnapshot()
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error(ctx, "failed to marshal snapshot", err)
		return nil
	}
	line := append(data, '\n')
	s.broadcast(line)
	return line
}

func (s *Server) drainCommands(ctx context.Context) {
	for {
		select {
		case cc := <-s.cmdCh:
			s.applyCommand(ctx, cc.cmd)
		default:
			return
		}
	}
}

// ApplyCommand validates and applies one parsed command to the world
func (s *Server) applyCommand(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case SetTimeScaleCommand:
		s.timeScale = validation.ClampTimeScale(c.TimeScale, s.envCfg.MaxTimeScale, 1.0)
		s.logger.Debug(ctx, "time scale changed", "time_scale", s.timeScale)
	case MovePawnCommand:
		if err := validation.ValidateMoveDelta(c.DX, c.DY); err != nil {
			s.logger.Warn(ctx, "rejected move", "reason", err.Error())
			return
		}
		s.world.Interior.QueueCommand(interior.MoveCommand{DX: c.DX, DY: c.DY})
	case ToggleSleepCommand:
		s.world.Interior.QueueCommand(interior.ToggleSleepCommand{})
	case InteractAtCommand:
		if err := validation.ValidateInteriorCoord(c.X, c.Y); err != nil {
			s.logger.Warn(ctx, "rejected interaction", "reason", err.Error())
			return
		}
		s.world.Interior.QueueCommand(interior.InteractCommand{X: c.X, Y: c.Y})
	}
}

// QueueCommand feeds a pre-parsed command into the next tick. Used by
// the stdio front end, which bypasses the TCP read loop.
func (s *Server) QueueCommand(cmd Command) {
	select {
	case s.cmdCh <- clientCommand{cmd: cmd}:
	default:
	}
}

func (s *Server) broadcast(data []byte) {
	s.clientMu.RLock()
	defer s.clientMu.RUnlock()
	for _, client := range s.clients {
		select {
		case client.send <- data:
		default:
			// Slow client: skip this frame rather than stall everyone.
		}
	}
}
