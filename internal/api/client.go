package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/clarketm/json"
)

// DefaultBaseURL is the production endpoint of the Hunter API.
const DefaultBaseURL = "https://api.hunter.io/v2"

const defaultUserAgent = "hunterio-client-go"

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes a single call to the API.
type Request struct {
	// Method is the HTTP verb. GET when empty.
	Method string
	// Path is the endpoint path relative to the base URL, e.g. "domain-search"
	// or "leads/42".
	Path string
	// Query holds the endpoint-specific query parameters. The API key is
	// merged into a copy at send time; Query itself is never mutated.
	Query url.Values
	// Body is JSON-encoded into the request body when non-nil.
	Body any
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do sends the request and returns the raw response. Responses with status
// 400 or above are returned as an *HTTPError; transport failures as a
// *NetworkError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	// The URL recorded on errors excludes the api_key parameter so the
	// credential cannot leak through error text.
	errURL := c.baseURL + "/" + req.Path
	if enc := req.Query.Encode(); enc != "" {
		errURL += "?" + enc
	}

	query := url.Values{}
	for key, values := range req.Query {
		query[key] = append([]string(nil), values...)
	}
	query.Set("api_key", c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+req.Path+"?"+query.Encode(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: errURL}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: errURL}
	}

	if httpResp.StatusCode >= 400 {
		return nil, newHTTPError(method, errURL, httpResp.StatusCode, body)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// Data sends the request and unwraps the response envelope, returning the
// object under the body's data field. A success body without a data field is
// an *APIError carrying the whole decoded body. An empty body, as the service
// sends for updates and deletions, yields a nil map.
func (c *Client) Data(ctx context.Context, req Request) (map[string]any, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return unwrapData(resp)
}

func unwrapData(resp *Response) (map[string]any, error) {
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return nil, nil
	}

	var envelope map[string]any
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	raw, ok := envelope["data"]
	if !ok {
		return nil, &APIError{Message: errorDetails(envelope), Body: envelope}
	}
	if raw == nil {
		return nil, nil
	}

	data, ok := raw.(map[string]any)
	if !ok {
		return nil, &APIError{Message: "unexpected data shape in response", Body: envelope}
	}
	return data, nil
}
