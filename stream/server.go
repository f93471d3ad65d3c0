package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/love-developer/eras-horizons/horizon"
	"github.com/love-developer/eras-horizons/render"
)

// tickInterval is the simulation and broadcast cadence (~30 fps; the
// canvas client interpolates nothing, it just redraws frames as they come).
const tickInterval = 33 * time.Millisecond

// clientBuffer is the per-client outbound frame queue. Clients that fall
// this far behind get dropped instead of stalling the broadcast.
const clientBuffer = 8

// A server application calls the Upgrade method from an HTTP request
// handler to initiate a connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client is one websocket consumer with its outbound frame queue.
type client struct {
	conn *websocket.Conn
	ch   chan []byte
	addr string
}

// Server runs one headless horizon simulation and broadcasts frames to
// every connected websocket client.
type Server struct {
	addr   string
	effect *horizon.Effect

	mu      sync.Mutex
	clients map[*client]bool
}

// NewServer builds a broadcast server around an effect instance. The
// effect is only ever touched by the simulation goroutine.
func NewServer(addr string, effect *horizon.Effect) *Server {
	return &Server{
		addr:    addr,
		effect:  effect,
		clients: make(map[*client]bool),
	}
}

// Run serves the static client and websocket endpoint, driving the
// simulation until the context is cancelled.
func (s *Server) Run(ctx context.Context, static http.FileSystem) error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(static))
	mux.HandleFunc("/ws", s.wsHandler)

	srv := &http.Server{Addr: s.addr, Handler: logRequests(mux)}

	go s.simulate(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("serving horizon %q on %s", s.effect.Name(), s.addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		next.ServeHTTP(w, r)
	})
}

// simulate owns the effect: steps it at the tick cadence and fans frames
// out to client queues.
func (s *Server) simulate(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var elapsed float64
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := render.ClampDt(now.Sub(last).Seconds())
			last = now
			elapsed += dt

			s.effect.Step(dt)

			if s.clientCount() == 0 {
				continue
			}
			payload, err := json.Marshal(BuildFrame(s.effect, elapsed))
			if err != nil {
				log.Printf("marshal frame: %v", err)
				continue
			}
			s.broadcast(payload)
		}
	}
}

func (s *Server) clientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) broadcast(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.ch <- payload:
		default:
			// Slow client: close its queue and let the writer clean up.
			close(c.ch)
			delete(s.clients, c)
			log.Printf("dropping slow client %s", c.addr)
		}
	}
}

// wsHandler upgrades the connection and registers the client for frames.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}

	c := &client{
		conn: conn,
		ch:   make(chan []byte, clientBuffer),
		addr: conn.RemoteAddr().String(),
	}
	s.mu.Lock()
	s.clients[c] = true
	s.mu.Unlock()
	log.Printf("client connected: %s", c.addr)

	go s.writeLoop(c)
	go s.readLoop(c)
}

func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for payload := range c.ch {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.unregister(c)
			return
		}
	}
}

// readLoop drains control messages; any read error unregisters the client.
func (s *Server) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("client error: %v", err)
			}
			s.unregister(c)
			return
		}
	}
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	if s.clients[c] {
		close(c.ch)
		delete(s.clients, c)
	}
	s.mu.Unlock()
	c.conn.Close()
}
