package cli

import (
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
)

var _ APIResponse = &StreamingAPIResponse{}

// StreamingAPIResponse prints every websocket message it receives until
// the peer closes the connection.
type StreamingAPIResponse struct {
	url    *url.URL
	dialer *websocket.Dialer
}

func NewStreamingAPIResponse(url *url.URL, dialer *websocket.Dialer) APIResponse {
	return &StreamingAPIResponse{
		url:    url,
		dialer: dialer,
	}
}

func (resp *StreamingAPIResponse) Err() error {
	return nil
}

func (resp *StreamingAPIResponse) Print() error {
	conn, _, err := resp.dialer.Dial(resp.url.String(), nil)
	if err != nil {
		return fmt.Errorf("error dialing to %s: %w", resp.url.String(), err)
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				return nil
			}
			return err
		}
		fmt.Println(string(msg))
	}
}
