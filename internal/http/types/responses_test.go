// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusOK, map[string]string{"name": "Acme"}, "tenant")

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var r struct {
		Data    map[string]string `json:"data"`
		Message string            `json:"message"`
		Status  int               `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Data["name"] != "Acme" || r.Message != "tenant" || r.Status != http.StatusOK {
		t.Errorf("unexpected payload %+v", r)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, http.StatusForbidden, "not allowed")

	var r ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != http.StatusForbidden || r.Message != "not allowed" {
		t.Errorf("unexpected payload %+v", r)
	}
}
