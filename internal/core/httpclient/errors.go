package httpclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTransport marks failures where no HTTP response was obtained (dial, TLS, timeout).
var ErrTransport = errors.New("transport error")

// StatusError is returned for replies outside the 2xx range. Body holds the raw payload
// so callers can extract a vendor message.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from provider", e.StatusCode)
}

// Reason returns the status reason phrase, e.g. "Not Found".
func (e *StatusError) Reason() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return e.Status
}

// Do executes req and returns the full response body.
// Non-2xx replies yield a *StatusError; network failures wrap ErrTransport.
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	return body, nil
}
