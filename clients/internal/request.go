package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// NewJSONRequest builds a request with body encoded as JSON. body may
// be nil.
func NewJSONRequest(ctx context.Context, method, url string, body interface{}) (*http.Request, error) {
	var reader *bytes.Buffer
	if body != nil {
		reader = &bytes.Buffer{}
		if err := json.NewEncoder(reader).Encode(body); err != nil {
			return nil, err
		}
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
