// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var ErrNoSession = errors.New("no stored session")

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// storedSession is the on disk shape of a CLI session, it only holds API
// credentials, never user or tenant data.
type storedSession struct {
	Version      int            `json:"version"`
	Server       string         `json:"server"`
	Kind         ClientKind     `json:"kind"`
	SessionToken string         `json:"session_token,omitempty"`
	Cookies      []storedCookie `json:"cookies"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// SessionFile persists the client credentials between CLI invocations
type SessionFile struct {
	path string
}

// NewSessionFile uses path or, when empty, tenant-console/session.json under
// the user configuration directory.
func NewSessionFile(path string) (*SessionFile, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		path = filepath.Join(dir, "tenant-console", "session.json")
	}

	return &SessionFile{path: path}, nil
}

func (s *SessionFile) Path() string {
	return s.path
}

// Load restores the stored credentials into c. Sessions recorded for another
// server or client kind are ignored.
func (s *SessionFile) Load(c *Client) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNoSession
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}

	if stored.Server != c.Server || stored.Kind != c.kind {
		return ErrNoSession
	}

	cookies := make([]*http.Cookie, 0, len(stored.Cookies))
	for _, ck := range stored.Cookies {
		cookies = append(cookies, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: "/"})
	}

	c.SetCookies(cookies)
	if stored.SessionToken != "" {
		c.setSessionToken(stored.SessionToken)
	}

	return nil
}

func (s *SessionFile) Save(c *Client) error {
	stored := storedSession{
		Version:      1,
		Server:       c.Server,
		Kind:         c.kind,
		SessionToken: c.SessionToken(),
		Cookies:      make([]storedCookie, 0),
		UpdatedAt:    time.Now().UTC(),
	}

	for _, ck := range c.Cookies() {
		stored.Cookies = append(stored.Cookies, storedCookie{Name: ck.Name, Value: ck.Value})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (s *SessionFile) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
