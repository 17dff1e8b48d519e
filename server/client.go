package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kastheco/matiz/resolver"
)

// Client talks to a remote matiz server over HTTP. Connection errors are
// wrapped with "matiz server unreachable" so callers can surface them.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client pointing at baseURL.
// The underlying http.Client has a 5-second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("matiz server unreachable: %w", err)
	}
	return resp, nil
}

// decodeError reads an error response body and returns a formatted error.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("matiz server: %s (status %d)", errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("matiz server: unexpected status %d", resp.StatusCode)
}

func (c *Client) getJSON(u string, v any) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("matiz server: build request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("matiz server: decode response: %w", err)
	}
	return nil
}

// Resolve resolves one description remotely.
func (c *Client) Resolve(text string) (resolver.Resolution, error) {
	q := url.Values{}
	q.Set("text", text)

	var res resolver.Resolution
	if err := c.getJSON(c.baseURL+"/v1/resolve?"+q.Encode(), &res); err != nil {
		return resolver.Resolution{}, err
	}
	return res, nil
}

// ResolveBatch resolves several descriptions in one request. Results keep the
// order of texts.
func (c *Client) ResolveBatch(texts []string) ([]resolver.Resolution, error) {
	body, err := json.Marshal(BatchRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("matiz server: marshal batch: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/resolve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("matiz server: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var out []resolver.Resolution
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("matiz server: decode response: %w", err)
	}
	return out, nil
}

// Colors lists the server's dictionary, optionally filtered by q.
func (c *Client) Colors(q string) ([]resolver.ColorEntry, error) {
	u := c.baseURL + "/v1/colors"
	if q != "" {
		u += "?" + url.Values{"q": {q}}.Encode()
	}
	var entries []resolver.ColorEntry
	if err := c.getJSON(u, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Ping checks connectivity to the server.
// It uses a shorter 2-second timeout for health checks.
func (c *Client) Ping() error {
	pingClient := &http.Client{Timeout: 2 * time.Second}
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/v1/ping", nil)
	if err != nil {
		return fmt.Errorf("matiz server: build ping request: %w", err)
	}

	resp, err := pingClient.Do(req)
	if err != nil {
		return fmt.Errorf("matiz server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("matiz server: ping returned status %d", resp.StatusCode)
	}
	return nil
}
