package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized is returned when a request stays unauthorized
	// after the one-shot refresh attempt.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the backend rejects the caller's
	// role or ownership for the requested resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for missing resources.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable covers network failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError carries a backend validation failure: either a top-level
// detail message or per-field messages, in the backend's JSON shape.
// These are surfaced to the calling view and never retried.
type APIError struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// newAPIError parses a backend error body. Bodies are either
// {"detail": "..."} or {"field": ["msg", ...]}; anything unparseable
// degrades to a bare status error.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiErr
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			if key == "detail" {
				apiErr.Detail = v
				continue
			}
			apiErr.addField(key, v)
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					apiErr.addField(key, s)
				}
			}
		}
	}
	return apiErr
}

func (e *APIError) addField(key, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[key] = append(e.Fields[key], msg)
}
