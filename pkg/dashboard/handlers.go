package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/unitboard/unitboard/pkg/journal"
)

// utilityNamePattern rejects anything that could smuggle shell syntax
// or path segments into a unit name.
var utilityNamePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

func (s *Server) utilityNameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		utility, ok := mux.Vars(req)["utility"]
		if !ok || !utilityNamePattern.MatchString(utility) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid utility name"})
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "dashboard page not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, req *http.Request) {
	utilities, err := s.utilities()
	if err != nil {
		log.WithError(err).Error("failed to read utility list")
		utilities = nil
	}

	writeJSON(w, http.StatusOK, s.status.ReportAll(req.Context(), utilities))
}

func (s *Server) handleLogs(w http.ResponseWriter, req *http.Request) {
	utility := mux.Vars(req)["utility"]
	writeJSON(w, http.StatusOK, s.logs.Fetch(req.Context(), utility))
}

// handleLogStream follows the utility's journal over a websocket, one
// JSON-encoded entry per message, until the client disconnects.
func (s *Server) handleLogStream(w http.ResponseWriter, req *http.Request) {
	utility := mux.Vars(req)["utility"]

	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	entries := make(chan journal.Entry)
	followErr := make(chan error, 1)

	go func() {
		followErr <- s.logs.Follow(ctx, utility, entries)
	}()

	go func() {
		// Drain the client's read side to notice disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		select {
		case entry := <-entries:
			if err := conn.WriteJSON(entry); err != nil {
				cancel()
				<-followErr
				return
			}
		case err := <-followErr:
			if err != nil {
				log.WithField("utility", utility).WithError(err).Warn("log stream ended")
				_ = conn.WriteJSON(journal.Result{Utility: utility, Error: err.Error(), Entries: []journal.Entry{}})
			}
			return
		case <-ctx.Done():
			<-followErr
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}
