package server

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tonghaoch/landing-server/internal/config"
	"github.com/tonghaoch/landing-server/internal/handler"
	"github.com/tonghaoch/landing-server/internal/middleware"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 120 * time.Second
	maxHeaderBytes    = 64 << 10
)

// BindError is returned when the listener cannot be created, e.g. the
// port is already in use or the process lacks permission to bind it.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Server serves the landing page and health check.
type Server struct {
	network    string
	addr       string
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all routes and middleware configured. The
// route table is fixed once New returns.
func New(cfg config.Config) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Verbose))
	// Preflights still go through routing: 405 on known paths, 404 otherwise.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet},
		AllowedHeaders:     []string{"*"},
		AllowCredentials:   false,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))
	r.Use(chimw.Recoverer)

	// Routes
	r.Get("/", handler.Home)
	r.Get("/health", handler.Health)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return &Server{
		network: network(cfg.Host),
		addr:    cfg.Addr(),
		router:  r,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the TCP listener. Failures are returned as *BindError and
// are not retried.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen(s.network, s.addr)
	if err != nil {
		return nil, &BindError{Addr: s.addr, Err: err}
	}
	slog.Debug("listener bound", "address", ln.Addr().String())
	return ln, nil
}

// Serve accepts connections on ln until it is closed. Each connection is
// served on its own goroutine.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// ListenAndServe binds the listener, calls ready with the bound address,
// then serves until the listener fails.
func (s *Server) ListenAndServe(ready func(addr net.Addr)) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	if ready != nil {
		ready(ln.Addr())
	}
	return s.Serve(ln)
}

// network picks tcp4 for IPv4 literals so 0.0.0.0 binds IPv4 only instead
// of the dual-stack [::] socket.
func network(host string) string {
	if ip := net.ParseIP(host); ip != nil && ip.To4() != nil {
		return "tcp4"
	}
	return "tcp"
}

// URL formats addr as the http URL the server answers on.
func URL(addr net.Addr) string {
	return "http://" + addr.String()
}
