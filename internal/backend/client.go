// Package backend is the HTTP client for the upstream sales API. Every
// response arrives wrapped in a {status, data, message} envelope; the
// client unwraps it and maps API failures onto typed errors.
package backend

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
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the API root, used to build download links that the
// browser follows directly rather than going through this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("do -> json.Marshal -> %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("do -> http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do -> %v %v -> %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("do -> io.ReadAll -> %w", err)
	}

	env := &envelope{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, env); err != nil {
			return nil, resp.StatusCode, fmt.Errorf("do -> json.Unmarshal envelope -> %w", err)
		}
	}

	return env, resp.StatusCode, nil
}

// unwrap decodes env.Data into out, treating an error status or a
// missing payload as a failure.
func unwrap(env *envelope, statusCode int, out any) error {
	if statusCode >= 400 || env.Status == "error" {
		return &APIError{StatusCode: statusCode, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &APIError{StatusCode: statusCode, Message: "resposta sem dados"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unwrap -> json.Unmarshal data -> %w", err)
	}
	return nil
}
