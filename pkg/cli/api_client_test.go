package cli_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unitboard/unitboard/pkg/cli"
)

func TestStatusDecodesReport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/status", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"utilities": [{"name": "backup", "enabled": true, "services": [{"name": "backup.service", "active": "active", "enabled": "enabled"}], "timers": []}]}`))
	}))
	defer ts.Close()

	resp := cli.NewAPIClient(ts.URL).Status()

	require.NoError(t, resp.Err())
	require.Len(t, resp.Body.Utilities, 1)
	require.Equal(t, "backup", resp.Body.Utilities[0].Name)
}

func TestLogsDecodesResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/logs/backup", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"utility": "backup", "entries": [{"timestamp": "2023-11-14T22:13:20Z", "message": "hello"}]}`))
	}))
	defer ts.Close()

	resp := cli.NewAPIClient(ts.URL).Logs("backup")

	require.NoError(t, resp.Err())
	require.Equal(t, "backup", resp.Body.Utility)
	require.Len(t, resp.Body.Entries, 1)
}

func TestLogsSurfacesAPIErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Invalid utility name"}`))
	}))
	defer ts.Close()

	resp := cli.NewAPIClient(ts.URL).Logs("nope")

	require.Error(t, resp.Err())
	require.Contains(t, resp.Err().Error(), "Invalid utility name")
}

func TestStatusReportsConnectionFailure(t *testing.T) {
	resp := cli.NewAPIClient("http://127.0.0.1:1").Status()

	require.Error(t, resp.Err())
}
