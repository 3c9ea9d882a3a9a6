package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"dsr-service/internal/domain/entity"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Message types pushed to clients
const (
	TypeInit   = "init"
	TypeUpdate = "update"
	TypeError  = "error"
)

var upgrader = gws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OverviewSource computes the counters pushed to subscribers
type OverviewSource interface {
	Fetch(ctx context.Context, year string) (*entity.OverviewCounters, error)
}

// Message is the envelope of every server push
type Message struct {
	Type  string                   `json:"type"`
	Data  *entity.OverviewCounters `json:"data,omitempty"`
	Error string                   `json:"error,omitempty"`
}

type subscribeRequest struct {
	Year string `json:"year"`
}

// SessionState is where a connection is in its lifecycle
type SessionState int

const (
	StateConnected SessionState = iota
	StateSubscribed
)

func (s SessionState) String() string {
	if s == StateSubscribed {
		return "subscribed"
	}
	return "connected"
}

// SessionInfo is a snapshot of one row of the session table
type SessionInfo struct {
	ID       string
	Year     string
	State    SessionState
	OpenedAt time.Time
}

type session struct {
	id        string
	conn      *gws.Conn
	subscribe chan string
	invalid   chan string
}

// Hub pushes overview counters to subscribed websocket clients. The session
// table is owned by the Run goroutine; every connection gets one reader and
// one writer goroutine, and only the writer touches the socket for output.
type Hub struct {
	source   OverviewSource
	interval time.Duration
	metrics  *metrics.Metrics
	logger   logger.Logger

	register   chan SessionInfo
	unregister chan string
	changes    chan SessionInfo
	snapshots  chan chan []SessionInfo
	done       chan struct{}
}

// NewHub creates a new overview hub
func NewHub(source OverviewSource, interval time.Duration, m *metrics.Metrics, logger logger.Logger) *Hub {
	return &Hub{
		source:     source,
		interval:   interval,
		metrics:    m,
		logger:     logger,
		register:   make(chan SessionInfo),
		unregister: make(chan string),
		changes:    make(chan SessionInfo),
		snapshots:  make(chan chan []SessionInfo),
		done:       make(chan struct{}),
	}
}

// Run owns the session table until ctx is cancelled. It must be running
// before connections are served.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	sessions := make(map[string]SessionInfo)
	for {
		select {
		case <-ctx.Done():
			h.metrics.WSSessions.Sub(float64(len(sessions)))
			h.logger.Info("Overview hub stopped", "sessions", len(sessions))
			return

		case info := <-h.register:
			sessions[info.ID] = info
			h.metrics.WSSessions.Inc()
			h.logger.Debug("Websocket session opened", "session", info.ID)

		case id := <-h.unregister:
			if _, ok := sessions[id]; ok {
				delete(sessions, id)
				h.metrics.WSSessions.Dec()
				h.logger.Debug("Websocket session closed", "session", id)
			}

		case info := <-h.changes:
			if current, ok := sessions[info.ID]; ok {
				current.Year = info.Year
				current.State = info.State
				sessions[info.ID] = current
			}

		case reply := <-h.snapshots:
			out := make([]SessionInfo, 0, len(sessions))
			for _, info := range sessions {
				out = append(out, info)
			}
			reply <- out
		}
	}
}

// Sessions returns a snapshot of the session table.
func (h *Hub) Sessions() []SessionInfo {
	reply := make(chan []SessionInfo, 1)
	select {
	case h.snapshots <- reply:
		return <-reply
	case <-h.done:
		return nil
	}
}

func (h *Hub) send(ch chan SessionInfo, info SessionInfo) {
	select {
	case ch <- info:
	case <-h.done:
	}
}

// ServeHTTP upgrades the request and serves the session until the client
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}

	s := &session{
		id:        uuid.New().String(),
		conn:      conn,
		subscribe: make(chan string),
		invalid:   make(chan string),
	}

	ctx, cancel := context.WithCancel(r.Context())
	h.send(h.register, SessionInfo{ID: s.id, State: StateConnected, OpenedAt: time.Now()})

	// Hub shutdown ends every session.
	go func() {
		select {
		case <-h.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Closing the socket once the writer stops unblocks the reader.
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writeLoop(ctx, s)
		cancel()
		conn.Close()
	}()

	h.readLoop(ctx, s)

	cancel()
	<-writerDone

	select {
	case h.unregister <- s.id:
	case <-h.done:
	}
}

// readLoop decodes subscription requests and hands them to the writer.
func (h *Hub) readLoop(ctx context.Context, s *session) {
	s.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if gws.IsUnexpectedCloseError(err, gws.CloseGoingAway, gws.CloseNormalClosure, gws.CloseNoStatusReceived) {
				h.logger.Warn("Websocket read failed", "session", s.id, "error", err)
			}
			return
		}

		var req subscribeRequest
		target, payload := s.subscribe, ""
		if err := json.Unmarshal(data, &req); err != nil {
			target, payload = s.invalid, "Invalid message format"
		} else if year := strings.TrimSpace(req.Year); year == "" {
			target, payload = s.invalid, "Year is required"
		} else {
			payload = year
		}

		select {
		case target <- payload:
		case <-ctx.Done():
			return
		}
	}
}

// writeLoop is the only goroutine writing to the connection. It owns the
// session's ticker, which exists only while subscribed.
func (h *Hub) writeLoop(ctx context.Context, s *session) {
	var (
		ticker *time.Ticker
		tick   <-chan time.Time
		year   string
	)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case y := <-s.subscribe:
			year = y
			if ticker != nil {
				ticker.Stop()
			}
			ticker = time.NewTicker(h.interval)
			tick = ticker.C
			h.send(h.changes, SessionInfo{ID: s.id, Year: year, State: StateSubscribed})
			if !h.push(ctx, s, TypeInit, year) {
				return
			}

		case reason := <-s.invalid:
			if !h.write(s, Message{Type: TypeError, Error: reason}) {
				return
			}

		case <-tick:
			if !h.push(ctx, s, TypeUpdate, year) {
				return
			}
		}
	}
}

// push fetches the counters for year and writes them. A failed fetch is
// reported to the client without leaving the subscribed state.
func (h *Hub) push(ctx context.Context, s *session, msgType, year string) bool {
	data, err := h.source.Fetch(ctx, year)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		h.logger.Error("Failed to fetch overview", "session", s.id, "year", year, "error", err)
		return h.write(s, Message{Type: TypeError, Error: "Failed to fetch overview"})
	}
	return h.write(s, Message{Type: msgType, Data: data})
}

func (h *Hub) write(s *session, msg Message) bool {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		h.logger.Warn("Websocket write failed", "session", s.id, "error", err)
		return false
	}
	return true
}
