// Package siteclient is the Go client for the site API. It submits the
// contact form and fetches page content.
package siteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cavaltron-backend/pkg/contact"
)

// Config holds the configuration for the client.
type Config struct {
	// BaseURL is the root URL of the API server, e.g. "https://api.cavaltron.com.br".
	// The "/v1" suffix is appended automatically if missing.
	BaseURL string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with 15s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasSuffix(c.BaseURL, "/v1") {
		c.BaseURL = c.BaseURL + "/v1"
	}
}

// Client talks to the site API. It is safe for concurrent use.
type Client struct {
	cfg Config
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// SendContact validates sub locally and, only when it is valid, posts it
// once. A validation failure is returned as validation.FieldErrors and no
// request is made. There is no retry.
func (c *Client) SendContact(ctx context.Context, sub contact.Submission) (*ContactReceipt, error) {
	normalized, fieldErrs := contact.Validate(sub)
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("siteclient: failed to marshal request: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/contact", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, parseAPIError(status, body)
	}

	// A 2xx can still carry an error payload
	var payload struct {
		ContactReceipt
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("siteclient: failed to parse contact response: %w", err)
	}
	if payload.Error != "" {
		return nil, &APIError{StatusCode: status, Message: payload.Error}
	}
	return &payload.ContactReceipt, nil
}

// GetSection fetches one named section with defaults applied
func (c *Client) GetSection(ctx context.Context, name string) (*Section, error) {
	var s Section
	if err := c.getData(ctx, "/content/"+url.PathEscape(name), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetContactInfo fetches the contact channels
func (c *Client) GetContactInfo(ctx context.Context) ([]ContactChannel, error) {
	var out []ContactChannel
	if err := c.getData(ctx, "/contact-info", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSkills fetches skills in display order
func (c *Client) GetSkills(ctx context.Context) ([]Skill, error) {
	var out []Skill
	if err := c.getData(ctx, "/skills", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProjects fetches projects in display order
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.getData(ctx, "/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPage fetches every section of the page in one call
func (c *Client) GetPage(ctx context.Context) (*Page, error) {
	var p Page
	if err := c.getData(ctx, "/page", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// getData unwraps the standard response envelope into out
func (c *Client) getData(ctx context.Context, path string, out interface{}) error {
	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return parseAPIError(status, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("siteclient: failed to parse response: %w", err)
	}
	if env.Error != "" {
		return &APIError{StatusCode: status, Message: env.Error}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("siteclient: failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("siteclient: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("siteclient: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("siteclient: failed to read response: %w", err)
	}
	return resp.StatusCode, data, nil
}
