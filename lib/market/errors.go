// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the marketplace backend.
// The backend returns a JSON body with a "detail" field (or "message"
// on some routes); when neither is present the generic "request failed"
// text stands in so callers always have something displayable.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Detail is the best-effort human-readable description extracted
	// from the response body.
	Detail string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("market: HTTP %d: %s", err.StatusCode, err.Detail)
}

// IsNotFound reports whether err is a backend 404 Not Found response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is a backend 401 Unauthorized or
// 403 Forbidden response (bad credentials, or acting on an offer the
// user does not own).
func IsUnauthorized(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == 401 || apiError.StatusCode == 403
}

// IsValidation reports whether err is a backend 400 or 422 response —
// a request the backend rejected as malformed or constraint-violating.
func IsValidation(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == 400 || apiError.StatusCode == 422
}

// parseAPIError builds an APIError from a status code and response
// body, preferring the server's "detail" field, then "message", then
// the generic fallback text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, Detail: "request failed"}

	var wireError struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil {
		if wireError.Detail != "" {
			apiError.Detail = wireError.Detail
		} else if wireError.Message != "" {
			apiError.Detail = wireError.Message
		}
	}

	return apiError
}
