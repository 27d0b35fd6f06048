// Package debugserver exposes a plan run's advisory event stream
// (plan.Notifier) over a websocket for interactive debugging, and a
// Prometheus /metrics endpoint summarizing the run. Grounded on a
// sibling retrieved repo's websocket-hub shape (cmd/server/main.go):
// an Upgrader-based handler fanning broadcast messages out to every
// connected client behind a write-side mutex.
package debugserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seethruhead/unraid-binpack/plan"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Message is the wire shape pushed to every connected debug client, one
// per Notifier callback.
type Message struct {
	Type     string           `json:"type"`
	Snapshot *plan.Snapshot   `json:"snapshot,omitempty"`
	Compact  string           `json:"compact,omitempty"`
}

// safeConn serializes concurrent writes from the broadcast loop and the
// per-connection goroutine.
type safeConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *safeConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Server hosts the "/ws" event feed and "/metrics" Prometheus endpoint
// for a single plan run started with --debug.
type Server struct {
	metrics *Metrics

	mu      sync.Mutex
	clients map[*safeConn]struct{}

	httpSrv *http.Server
}

// New builds a Server bound to addr (e.g. ":9191"). Call Serve to start
// accepting connections and Notifier() to obtain the plan.Notifier to
// pass into plan.PackTightly.
func New(addr string) *Server {
	s := &Server{
		metrics: newMetrics(),
		clients: make(map[*safeConn]struct{}),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.Handle("/metrics", promhttp.Handler())
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Serve blocks accepting connections until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.httpSrv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	sc := &safeConn{Conn: conn}

	s.mu.Lock()
	s.clients[sc] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, sc)
		s.mu.Unlock()
		conn.Close()
	}()

	// The feed is write-only from the server's perspective; block on
	// reads purely to detect client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) broadcast(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		if err := c.writeJSON(msg); err != nil {
			continue
		}
	}
}

// notifier adapts Server to plan.Notifier.
type notifier struct{ s *Server }

func (n notifier) NotifySnapshot(snap plan.Snapshot) {
	n.s.metrics.observeSnapshot(snap)
	cp := snap
	n.s.broadcast(Message{Type: "snapshot", Snapshot: &cp})
}

func (n notifier) NotifyCompactEvent(line string) {
	n.s.broadcast(Message{Type: "compact", Compact: line})
}

// Notifier returns the plan.Notifier that forwards every callback to
// connected debug clients and updates the Prometheus gauges.
func (s *Server) Notifier() plan.Notifier { return notifier{s: s} }

// marshalSnapshot encodes snap in the same wire format broadcast sends.
func marshalSnapshot(snap plan.Snapshot) ([]byte, error) {
	return json.Marshal(Message{Type: "snapshot", Snapshot: &snap})
}
