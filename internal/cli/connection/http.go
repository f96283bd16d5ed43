// Package connection provides the HTTP client used by redisgate-cli to
// talk to a running gateway.
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to a redisgate server over HTTP.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a gateway client. The server address may omit the
// scheme; plain HTTP is assumed.
func NewClient(server, token string) *Client {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BatchResult is one entry of a pipeline or transaction response.
type BatchResult struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Command executes a single command and returns its result.
func (c *Client) Command(ctx context.Context, args []any) (any, error) {
	resp, err := c.post(ctx, "/", args)
	if err != nil {
		return nil, err
	}

	var body struct {
		Result any     `json:"result"`
		Error  *string `json:"error"`
	}
	if err := parseResponse(resp, &body); err != nil {
		return nil, err
	}
	if body.Error != nil {
		return nil, fmt.Errorf("%s", *body.Error)
	}
	return body.Result, nil
}

// Pipeline executes commands as a pipeline.
func (c *Client) Pipeline(ctx context.Context, commands [][]any) ([]BatchResult, error) {
	return c.batch(ctx, "/pipeline", commands)
}

// MultiExec executes commands atomically inside MULTI/EXEC.
func (c *Client) MultiExec(ctx context.Context, commands [][]any) ([]BatchResult, error) {
	return c.batch(ctx, "/multi-exec", commands)
}

func (c *Client) batch(ctx context.Context, path string, commands [][]any) ([]BatchResult, error) {
	resp, err := c.post(ctx, path, commands)
	if err != nil {
		return nil, err
	}

	var results []BatchResult
	if err := parseResponse(resp, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Health checks the gateway and its store connection.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := parseResponse(resp, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "redisgate-cli/1.0")

	return c.client.Do(req)
}

// parseResponse decodes a JSON response body into target, surfacing the
// gateway's error message on failure statuses.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}
