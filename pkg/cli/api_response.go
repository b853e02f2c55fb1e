package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

type APIResponse interface {
	Print() error
	Err() error
}

var _ APIResponse = &CommonAPIResponse{}

// CommonAPIResponse carries an untyped response, or an error raised
// before any request could be made.
type CommonAPIResponse struct {
	StatusCode  int    `json:"statusCode"`
	Body        string `json:"body"`
	Error       error  `json:"error"`
	contentType string
}

func (resp *CommonAPIResponse) Err() error {
	return resp.Error
}

func (resp *CommonAPIResponse) Print() error {
	if resp.Error != nil {
		fmt.Println(resp.Error.Error())
		return nil
	}
	if len(resp.Body) == 0 {
		return nil
	}

	out := resp.Body
	if resp.contentType == "application/json" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(resp.Body), "", "    "); err != nil {
			return err
		}
		out = string(pretty.Color(buf.Bytes(), nil))
	}

	fmt.Println(out)
	return nil
}
