package printforge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the PrintForge backend API. Construct it with NewClient
// and customize it through the With* builder methods before first use.
type Client struct {
	baseURL   string
	http      *http.Client
	store     TokenStore
	logger    Logger
	extractor TokenExtractor
	transport *AuthTransport
}

// NewClient returns a Client rooted at baseURL whose requests carry the
// token held in store.
func NewClient(baseURL string, store TokenStore) *Client {
	transport := &AuthTransport{Store: store}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		store:     store,
		logger:    defLogger{},
		extractor: DefaultTokenExtractor(),
		transport: transport,
		http: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	if c.transport != nil {
		c.transport.Logger = logger
	}
	return c
}

// WithHTTPClient swaps the underlying HTTP client. The caller owns the
// transport wiring in that case.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.http = httpClient
	c.transport = nil
	return c
}

// WithTokenExtractor overrides how tokens are pulled out of authentication
// responses.
func (c *Client) WithTokenExtractor(extractor TokenExtractor) *Client {
	c.extractor = extractor
	return c
}

// WithUnauthorizedHandler registers the callback invoked after a 401
// response outside the order-scoped endpoints clears the token.
func (c *Client) WithUnauthorizedHandler(fn func()) *Client {
	if c.transport != nil {
		c.transport.OnUnauthorized = fn
	}
	return c
}

// Store exposes the token store the client was built with.
func (c *Client) Store() TokenStore {
	return c.store
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; SessionController owns persistence so the save/derive/notify
// sequence stays in one place.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return c.authenticate(ctx, "/api/v1/login", req)
}

// Register submits new-user data and returns the issued token, same
// contract as Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return c.authenticate(ctx, "/api/v1/register", req)
}

func (c *Client) authenticate(ctx context.Context, path string, payload any) (string, error) {
	body, err := c.sendRaw(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}

	token, err := c.extractor.Extract(body)
	if err != nil {
		c.logger.Error("token extraction failed for %s: %v", path, err)
		return "", err
	}

	return token, nil
}

// sendRaw performs a request and returns the raw response body, mapping
// non-2xx statuses to *APIError.
func (c *Client) sendRaw(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apiError(resp.StatusCode, data)
	}

	return data, nil
}

// send performs a JSON request and decodes the response into out when out
// is non-nil.
func (c *Client) send(ctx context.Context, method, path string, payload, out any) error {
	data, err := c.sendRaw(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

// apiError maps a non-2xx response to *APIError, preferring the
// backend-supplied message and falling back to the generic status text.
func apiError(status int, body []byte) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)

	message := envelope.Message
	if message == "" {
		message = envelope.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &APIError{Status: status, Message: message}
}
