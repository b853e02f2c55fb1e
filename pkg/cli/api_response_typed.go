package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

var _ APIResponse = &TypedAPIResponse[struct{}]{}

type TypedAPIResponse[TBody any] struct {
	StatusCode  int   `json:"statusCode"`
	Body        TBody `json:"body"`
	Error       error `json:"error"`
	contentType string
}

// apiError is the JSON error envelope the dashboard returns for
// rejected requests.
type apiError struct {
	Error string `json:"error"`
}

func NewTypedAPIResponse[TBody any](body TBody) func(resp *http.Response, err error) *TypedAPIResponse[TBody] {
	return func(resp *http.Response, err error) *TypedAPIResponse[TBody] {
		apiRes := TypedAPIResponse[TBody]{
			Error: err,
		}
		if resp == nil {
			return &apiRes
		}
		defer resp.Body.Close()

		apiRes.StatusCode = resp.StatusCode
		apiRes.contentType = strings.Split(resp.Header.Get("Content-Type"), ";")[0]

		out, err := io.ReadAll(resp.Body)
		if err != nil {
			apiRes.Error = errors.Wrap(err, "failed to read body")
			return &apiRes
		}

		if apiRes.contentType != "application/json" {
			apiRes.Error = fmt.Errorf("unexpected content type %q: %s", apiRes.contentType, strings.TrimSpace(string(out)))
			return &apiRes
		}

		if resp.StatusCode >= http.StatusBadRequest {
			envelope := apiError{}
			if err := json.Unmarshal(out, &envelope); err == nil && envelope.Error != "" {
				apiRes.Error = errors.New(envelope.Error)
			} else {
				apiRes.Error = fmt.Errorf("request failed with status %d", resp.StatusCode)
			}
			return &apiRes
		}

		if err := json.Unmarshal(out, &body); err != nil {
			apiRes.Error = errors.Wrap(err, "failed to parse body as JSON")
			return &apiRes
		}

		apiRes.Body = body

		return &apiRes
	}
}

func (resp *TypedAPIResponse[TBody]) Err() error {
	return resp.Error
}

func (resp *TypedAPIResponse[TBody]) Print() error {
	if resp.Error != nil {
		fmt.Println(resp.Error.Error())
		return nil
	}

	jsonBody, err := json.Marshal(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal body as JSON")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, jsonBody, "", "    "); err != nil {
		return err
	}

	fmt.Println(string(pretty.Color(buf.Bytes(), nil)))
	return nil
}
