package cli

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/unitboard/unitboard/pkg/journal"
	"github.com/unitboard/unitboard/pkg/unit"
)

// APIClient talks to a running dashboard instance.
type APIClient struct {
	apiAddress string
}

func NewAPIClient(apiAddress string) *APIClient {
	return &APIClient{
		apiAddress: apiAddress,
	}
}

// Status fetches the aggregate status report of all utilities.
func (api *APIClient) Status() *TypedAPIResponse[unit.Report] {
	return NewTypedAPIResponse(unit.Report{})(http.Get(fmt.Sprintf("%s/api/status", api.apiAddress)))
}

// Logs fetches the recent journal entries of one utility.
func (api *APIClient) Logs(utility string) *TypedAPIResponse[journal.Result] {
	return NewTypedAPIResponse(journal.Result{})(http.Get(fmt.Sprintf("%s/api/logs/%s", api.apiAddress, utility)))
}

// LogsStream follows a utility's journal over the dashboard's websocket
// endpoint and relays every entry to the terminal.
func (api *APIClient) LogsStream(utility string) APIResponse {
	streamURL, err := api.buildWebsocketURL(fmt.Sprintf("/api/logs/%s/stream", utility))
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	return NewStreamingAPIResponse(streamURL, websocket.DefaultDialer)
}

func (api *APIClient) buildWebsocketURL(path string) (*url.URL, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = path

	return u, nil
}
