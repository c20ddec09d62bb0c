package cms

import (
	"errors"
	"fmt"

	"github.com/imroc/req/v3"
)

var (
	ErrNoSpace       = errors.New("cms: space id missing")
	ErrNoEnvironment = errors.New("cms: environment id missing")
	ErrNoToken       = errors.New("cms: management token missing")
)

// ErrorSys is the sys block of an error document returned by the API.
type ErrorSys struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// APIError is an error document returned by the management API.
type APIError struct {
	Sys        ErrorSys `json:"sys"`
	Message    string   `json:"message"`
	RequestID  string   `json:"requestId"`
	Details    any      `json:"details,omitempty"`
	StatusCode int      `json:"-"`
	Operation  string   `json:"-"`
}

func (e *APIError) Error() string {
	if e.Sys.ID != "" {
		return fmt.Sprintf("cms api error: %s (status %d, %s): %s", e.Operation, e.StatusCode, e.Sys.ID, e.Message)
	}
	return fmt.Sprintf("cms api error: %s (status %d): %s", e.Operation, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// handleAPIError turns a transport failure or an error response into an error.
func handleAPIError(resp *req.Response, requestErr error, apiErr *APIError, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s: %w", operation, requestErr)
	}

	if resp.IsErrorState() {
		apiErr.StatusCode = resp.StatusCode
		apiErr.Operation = operation
		if apiErr.Message == "" && apiErr.Sys.ID == "" {
			apiErr.Message = resp.String()
		}
		return apiErr
	}

	return nil
}
