// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every response with a status of 400 and above
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// newAPIError decodes the DRF {detail, code} shape as well as the allauth
// {status, errors: [{message, code}]} one.
func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Detail string `json:"detail"`
		Code   string `json:"code"`
		Errors []struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"errors"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}

	e.Detail = payload.Detail
	e.Code = payload.Code

	if e.Detail == "" && len(payload.Errors) > 0 {
		e.Detail = payload.Errors[0].Message
		e.Code = payload.Errors[0].Code
	}

	return e
}

// IsStatus reports whether err carries an API response with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

func IsForbidden(err error) bool {
	return IsStatus(err, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
