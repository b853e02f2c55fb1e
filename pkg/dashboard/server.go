package dashboard

import (
	"context"
	"embed"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/unitboard/unitboard/pkg/journal"
	"github.com/unitboard/unitboard/pkg/unit"
)

//go:embed static/index.html
var staticFiles embed.FS

// StatusProvider yields unit status records; satisfied by *unit.Prober.
type StatusProvider interface {
	ReportAll(ctx context.Context, utilities []string) unit.Report
}

// LogProvider yields journal entries; satisfied by *journal.Reader.
type LogProvider interface {
	Fetch(ctx context.Context, utility string) journal.Result
	Follow(ctx context.Context, utility string, out chan<- journal.Entry) error
}

// UtilityLister returns the configured utility names in display order.
type UtilityLister func() ([]string, error)

// Server is the dashboard HTTP server. All collaborators are injected
// so the HTTP surface can be tested against in-memory fakes.
type Server struct {
	listenAddr string
	router     *mux.Router
	srv        *http.Server
	status     StatusProvider
	logs       LogProvider
	utilities  UtilityLister
	upgrader   websocket.Upgrader
}

func New(listenAddr string, status StatusProvider, logs LogProvider, utilities UtilityLister) *Server {
	s := &Server{
		listenAddr: listenAddr,
		router:     mux.NewRouter(),
		status:     status,
		logs:       logs,
		utilities:  utilities,
	}

	s.router.Path("/").HandlerFunc(s.handleIndex).Methods(http.MethodGet)
	s.router.Path("/health").HandlerFunc(s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Path("/status").HandlerFunc(s.handleStatus).Methods(http.MethodGet)

	logsAPI := api.PathPrefix("/logs").Subrouter()
	logsAPI.Use(s.utilityNameMiddleware)
	logsAPI.Path("/{utility}").HandlerFunc(s.handleLogs).Methods(http.MethodGet)
	logsAPI.Path("/{utility}/stream").HandlerFunc(s.handleLogStream).Methods(http.MethodGet)

	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.router,
	}

	log.Infof("dashboard listens on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	log.Info("shutting down dashboard")
	return s.srv.Shutdown(ctx)
}
