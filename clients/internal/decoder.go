package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"teamdesk/errors"
)

// DecodeResponse consumes and closes the response body. On a 2xx it
// decodes the body into v (v may be nil when the payload does not
// matter); on anything else it turns the body into an error carrying
// the status code.
func DecodeResponse(res *http.Response, v interface{}) error {
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		return decodeError(res)
	}

	if v == nil {
		_, err := io.Copy(io.Discard, res.Body)
		return err
	}

	return json.NewDecoder(res.Body).Decode(v)
}

// Both services answer failures with {"error": "..."}.
func decodeError(res *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil || payload.Error == "" {
		return errors.New(fmt.Sprintf("error in call: %s", res.Status), errors.WithCode(res.StatusCode))
	}

	return errors.New(payload.Error, errors.WithCode(res.StatusCode))
}
