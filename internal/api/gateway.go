// Package api is the single doorway to the remote follow-up API: it signs
// requests with the session's bearer token, translates HTTP failures into
// typed errors, and enforces the global 401 rule (clear the session and
// send the user back to login, whatever the caller was doing).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"followup_tracker/internal/session"
)

// Error is a non-2xx response from the API, carrying the best
// human-readable message the body offered.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Gateway issues JSON requests against the configured base URL.
type Gateway struct {
	baseURL string
	client  *http.Client
	store   *session.Store

	// onUnauthorized runs after a 401 has cleared the session; the app
	// wires it to a navigation reset.
	onUnauthorized func()
}

// NewGateway creates a gateway over the given base URL and session store.
func NewGateway(baseURL string, timeout time.Duration, store *session.Store) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		store:   store,
	}
}

// SetUnauthorizedHandler registers the callback run when any request comes
// back 401.
func (g *Gateway) SetUnauthorizedHandler(fn func()) {
	g.onUnauthorized = fn
}

// Get issues a GET with optional query parameters, decoding the response
// into out when out is non-nil.
func (g *Gateway) Get(ctx context.Context, path string, params url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, params, nil, out)
}

// Post issues a POST with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH with an optional JSON body.
func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint := g.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := g.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Global rule: an expired or revoked token ends the session no
		// matter which screen triggered the request.
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			log.Printf("ERROR: failed to clear session after 401: %v", clearErr)
		}
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return &Error{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
	}
	return nil
}

// genericFailure is shown when the error body carries nothing usable.
const genericFailure = "Something went wrong. Please try again."

// extractMessage pulls a displayable message out of an error body, probing
// "message" then "error", falling back to a generic string.
func extractMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return genericFailure
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		if msg, ok := payload["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := payload["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return genericFailure
}
