package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Required JSON fields per endpoint. A field that is absent or null is a
// missing field; zero is a valid value and is never substituted.
var (
	sipFields = []string{"monthly_investment", "expected_return", "time_period", "inflation_rate", "tax_rate"}
	swpFields = []string{"initial_investment", "monthly_withdrawal", "expected_return", "time_period", "inflation_rate", "tax_rate"}
	// id is optional for scenarios.
	scenarioFields = []string{"principal", "monthly_contribution", "years", "interest_rate", "inflation_rate", "tax_rate"}
)

// requestError is a client error with the status it should be reported as.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string {
	return e.msg
}

func badRequest(format string, args ...interface{}) error {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

type validator interface {
	Validate() error
}

// decodeInput reads a JSON object from the request body into dst. It fails
// before any computation when the body is too large, is not a JSON object,
// lacks a required field, has a field of the wrong type, or does not pass
// dst.Validate.
func (h *handler) decodeInput(w http.ResponseWriter, r *http.Request, dst validator, required []string) error {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &requestError{
				status: http.StatusRequestEntityTooLarge,
				msg:    fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize),
			}
		}
		return badRequest("failed to read request body: %v", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return badRequest("request body is empty")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	if fields == nil {
		return badRequest("request body must be a JSON object")
	}

	for _, name := range required {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return badRequest("missing required field: %s", name)
		}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return badRequest("field %s must be a %s", typeErr.Field, typeErr.Type)
		}
		return badRequest("invalid JSON body: %v", err)
	}

	return dst.Validate()
}
