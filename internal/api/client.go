package api

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
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds every request when the config leaves it unset
	DefaultTimeout = 10 * time.Second

	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 8 << 20
)

// TokenSource supplies the persisted bearer token and lets the client
// drop it when the backend rejects it.
type TokenSource interface {
	Token() string
	ClearToken()
}

// Client issues JSON requests against the storefront backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	log        zerolog.Logger
}

// NewClient creates a client rooted at baseURL. Redirect following is
// disabled and a cookie jar is installed: the backend answers some
// authenticated paths with a 302 loop unless the session cookie rides
// along, so credentials are forced on for all requests.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     log,
	}
}

// Do executes a request and returns the unwrapped business payload.
// Body is marshalled to JSON when non-nil; query is appended when non-empty.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, query url.Values) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Str("method", method).Str("path", path).Err(err).Msg("request failed to reach backend")
		return nil, &Error{Kind: KindNetwork, Message: MsgNetworkUnreachable, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: MsgNetworkUnreachable, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.transportError(method, path, resp.StatusCode, raw)
	}

	payload, err := unwrapEnvelope(raw)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("backend reported business failure")
		return nil, err
	}
	return payload, nil
}

// transportError classifies a non-2xx response. A 401 drops the persisted
// token; the session itself is not auto-cleared here.
func (c *Client) transportError(method, path string, status int, body []byte) error {
	c.log.Warn().Str("method", method).Str("path", path).Int("status", status).Msg("backend returned transport error")

	if status == http.StatusUnauthorized {
		c.tokens.ClearToken()
	}

	message := http.StatusText(status)
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		message = env.Message
	}
	return &Error{Kind: KindTransport, HTTPStatus: status, Message: message}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, query)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// GetJSON performs a GET request and decodes the payload into target
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	payload, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	return decodeInto(payload, target)
}

// PostJSON performs a POST request and decodes the payload into target
func (c *Client) PostJSON(ctx context.Context, path string, body, target interface{}) error {
	payload, err := c.Post(ctx, path, body)
	if err != nil {
		return err
	}
	return decodeInto(payload, target)
}

// PutJSON performs a PUT request and decodes the payload into target
func (c *Client) PutJSON(ctx context.Context, path string, body, target interface{}) error {
	payload, err := c.Put(ctx, path, body)
	if err != nil {
		return err
	}
	return decodeInto(payload, target)
}

func decodeInto(payload json.RawMessage, target interface{}) error {
	if target == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}
