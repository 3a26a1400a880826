// Package rest implements core.RemoteBackend against the notes API.
//
// Every method is a single network round trip: no retries, no caching.
// A non-2xx response surfaces as *core.RemoteError with the body carried
// as opaque text; the repository treats any error here as a reason to
// degrade the session to local-only mode.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/introspection"

	"github.com/arqv/inkpad/pkg/core"
)

const notesPath = "/api/notes"

// Client performs CRUD calls against a notes API, attaching a bearer
// credential when one is present.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// Config holds the configuration for the REST client.
type Config struct {
	BaseURL string
	Token   string
	// HTTPClient is optional. The default client imposes no timeout: a
	// hanging request simply delays the fallback decision until it
	// resolves or errors, matching the store's availability model.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a notes API client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    httpClient,
		logger:  cfg.Logger,
	}
}

// do sends one request. in (optional) is marshaled to JSON; out (optional)
// receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.logger != nil {
		c.logger.Debug("calling notes api", "method", method, "path", path)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &core.RemoteError{Status: resp.StatusCode, Body: string(text)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// List fetches the full server-side collection.
func (c *Client) List(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note
	if err := c.do(ctx, http.MethodGet, notesPath, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Create registers a note and returns the server's version of it, including
// the identifier the server assigned.
func (c *Client) Create(ctx context.Context, n core.Note) (core.Note, error) {
	var created core.Note
	if err := c.do(ctx, http.MethodPost, notesPath, n, &created); err != nil {
		return core.Note{}, err
	}
	return created, nil
}

// Update replaces the note with matching ID. No response body is required.
func (c *Client) Update(ctx context.Context, n core.Note) error {
	return c.do(ctx, http.MethodPut, notesPath+"/"+url.PathEscape(n.ID), n, nil)
}

// Delete removes a note by ID. No response body is required.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, notesPath+"/"+url.PathEscape(id), nil, nil)
}

// ClientState exposes internal state for observability. The credential
// itself is never exported.
type ClientState struct {
	BaseURL       string `json:"base_url"`
	Authenticated bool   `json:"authenticated"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	return ClientState{
		BaseURL:       c.baseURL,
		Authenticated: c.token != "",
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "remote-client"
}

var _ core.RemoteBackend = (*Client)(nil)
var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
