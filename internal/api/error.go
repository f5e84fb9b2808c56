package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a backend-reported failure: a non-2xx response whose JSON body
// carries a `detail` string. The detail passes through to the caller verbatim.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsAuth reports whether err is a backend authorization rejection.
func IsAuth(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

const genericDetail = "Request failed"

// decodeError turns a non-2xx response into an *Error. An absent or
// unparsable body yields the generic message plus the status code.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode, Detail: genericDetail}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
