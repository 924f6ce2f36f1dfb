package gateway

import (
	"fmt"
	"io"
	"net/http"
)

const maxErrorBody = 4096

// StatusError is returned when the remote end answers with a non-2xx status.
//
// Body holds the beginning of the response body, as sent by the server.
type StatusError struct {
	StatusCode int
	Status     string
	Url        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s: %s", e.Url, e.Status, e.Body)
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// newStatusError consumes and closes the response body.
func newStatusError(url string, resp *http.Response) *StatusError {
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Url:        url,
		Body:       body,
	}
}
