// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package httpclient talks to the account API. Client carries the transport
// concerns shared by every endpoint (base URL, cookies, CSRF and session token
// headers, error decoding) and exposes one method per REST operation.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/canonical/tenant-console/internal/tracing"
)

const (
	csrfCookieName     = "csrftoken"
	csrfHeaderName     = "X-CSRFToken"
	sessionTokenHeader = "X-Session-Token"

	defaultProfilePath = "auth/profile/me/"
	defaultTimeout     = 30 * time.Second
)

// ClientKind selects the allauth client flavour, browser sessions live in
// cookies while app sessions travel in the X-Session-Token header.
type ClientKind string

const (
	ClientBrowser ClientKind = "browser"
	ClientApp     ClientKind = "app"
)

func (k ClientKind) Valid() bool {
	return k == ClientBrowser || k == ClientApp
}

// HttpRequestDoer performs HTTP requests.
//
// The standard http.Client implements this interface.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.deepmap.com for example. It always ends with a slash.
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn

	kind        ClientKind
	jar         http.CookieJar
	profilePath string
	userAgent   string
	timeout     time.Duration

	mu           sync.RWMutex
	sessionToken string
}

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	if server == "" {
		return nil, fmt.Errorf("server url is required")
	}
	if !strings.HasPrefix(server, "http") {
		server = "http://" + server
	}
	if !strings.HasSuffix(server, "/") {
		server += "/"
	}

	client := Client{
		Server:      server,
		kind:        ClientBrowser,
		profilePath: defaultProfilePath,
		timeout:     defaultTimeout,
	}

	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}

	if _, err := url.Parse(client.Server); err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	if client.jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		client.jar = jar
	}

	// cookies are attached by the client itself, the doer must not keep its own jar
	if client.Client == nil {
		client.Client = &http.Client{
			Transport: tracing.NewTransport(http.DefaultTransport),
			Timeout:   client.timeout,
		}
	}

	return &client, nil
}

// WithHTTPClient allows overriding the default Doer, which is
// automatically created using http.Client. This is useful for tests.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request. This can be used to mutate the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

func WithClientKind(kind ClientKind) ClientOption {
	return func(c *Client) error {
		if !kind.Valid() {
			return fmt.Errorf("unknown client kind %q, expected app or browser", kind)
		}
		c.kind = kind
		return nil
	}
}

func WithCookieJar(jar http.CookieJar) ClientOption {
	return func(c *Client) error {
		c.jar = jar
		return nil
	}
}

func WithSessionToken(token string) ClientOption {
	return func(c *Client) error {
		c.sessionToken = token
		return nil
	}
}

// WithProfilePath selects the profile endpoint revision, either
// auth/profile/me/ or auth/user/me/profile/. An empty path keeps the default.
func WithProfilePath(path string) ClientOption {
	return func(c *Client) error {
		if path == "" {
			return nil
		}

		p := strings.TrimPrefix(strings.TrimSpace(path), "/")
		if p == "" {
			return fmt.Errorf("invalid profile path %q", path)
		}

		c.profilePath = p
		return nil
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) error {
		if d > 0 {
			c.timeout = d
		}
		return nil
	}
}

func (c *Client) Kind() ClientKind {
	return c.kind
}

func (c *Client) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sessionToken
}

func (c *Client) setSessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessionToken = token
}

// CSRFToken returns the Django CSRF cookie value known for the server, empty
// when the API has not handed one out yet.
func (c *Client) CSRFToken() string {
	return c.cookie(csrfCookieName)
}

func (c *Client) cookie(name string) string {
	u, err := url.Parse(c.Server)
	if err != nil {
		return ""
	}

	for _, ck := range c.jar.Cookies(u) {
		if ck.Name == name {
			return ck.Value
		}
	}

	return ""
}

// Cookies returns the cookies the jar holds for the server
func (c *Client) Cookies() []*http.Cookie {
	u, err := url.Parse(c.Server)
	if err != nil {
		return nil
	}
	return c.jar.Cookies(u)
}

// SetCookies seeds the jar for the server, used when restoring a session
func (c *Client) SetCookies(cookies []*http.Cookie) {
	u, err := url.Parse(c.Server)
	if err != nil {
		return
	}
	c.jar.SetCookies(u, cookies)
}

// ResetSession forgets every credential the client holds
func (c *Client) ResetSession() {
	c.setSessionToken("")

	expired := make([]*http.Cookie, 0)
	for _, ck := range c.Cookies() {
		expired = append(expired, &http.Cookie{Name: ck.Name, Value: "", Path: "/", MaxAge: -1})
	}
	c.SetCookies(expired)
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request, additionalEditors []RequestEditorFn) error {
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	for _, r := range additionalEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) attachCredentials(req *http.Request) {
	for _, ck := range c.jar.Cookies(req.URL) {
		req.AddCookie(ck)
	}

	switch c.kind {
	case ClientApp:
		if token := c.SessionToken(); token != "" {
			req.Header.Set(sessionTokenHeader, token)
		}
	case ClientBrowser:
		if isSafeMethod(req.Method) {
			return
		}
		if token := c.CSRFToken(); token != "" {
			req.Header.Set(csrfHeaderName, token)
		}
		// Django rejects unsafe https requests without a same origin referer
		if req.Header.Get("Referer") == "" {
			req.Header.Set("Referer", c.Server)
		}
	}
}

// do sends the request and decodes a successful JSON body into out. Any
// status of 400 and above is returned as an *APIError.
func (c *Client) do(ctx context.Context, req *http.Request, out any, reqEditors ...RequestEditorFn) error {
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.attachCredentials(req)

	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if cookies := resp.Cookies(); len(cookies) > 0 {
		c.jar.SetCookies(req.URL, cookies)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.captureSessionToken(resp.StatusCode, body)

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// captureSessionToken keeps the allauth app session token in sync. The token
// is handed out in meta.session_token, including on the 401 that signals a
// pending login code, and a 410 means the session is gone.
func (c *Client) captureSessionToken(status int, body []byte) {
	if c.kind != ClientApp {
		return
	}

	if status == http.StatusGone {
		c.setSessionToken("")
		return
	}

	var envelope struct {
		Meta struct {
			SessionToken string `json:"session_token"`
		} `json:"meta"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return
	}

	if envelope.Meta.SessionToken != "" {
		c.setSessionToken(envelope.Meta.SessionToken)
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
