package hunter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hunterio/client-go/internal/api"
)

// Client is the Hunter API client. It holds no mutable state beyond its
// configuration, so a single Client is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// Response is the raw result of an API call, returned by the *Raw method
// variants: the status code, headers and unparsed body of the HTTP response.
type Response = api.Response

// New creates a new Hunter client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// get performs a GET request and unwraps the data envelope.
func (c *Client) get(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	data, err := c.apiClient.Data(ctx, api.Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// getRaw performs a GET request and returns the full response.
func (c *Client) getRaw(ctx context.Context, path string, query url.Values) (*Response, error) {
	resp, err := c.apiClient.Do(ctx, api.Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// post sends payload as a JSON body and unwraps the data envelope.
func (c *Client) post(ctx context.Context, path string, payload any) (map[string]any, error) {
	data, err := c.apiClient.Data(ctx, api.Request{Method: http.MethodPost, Path: path, Body: payload})
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// put sends payload as a JSON body. The service answers updates with
// 204 No Content, so only the error is surfaced.
func (c *Client) put(ctx context.Context, path string, payload any) error {
	_, err := c.apiClient.Data(ctx, api.Request{Method: http.MethodPut, Path: path, Body: payload})
	return wrapError(err)
}

// delete issues a DELETE request. The service answers with 204 No Content,
// so only the error is surfaced.
func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.apiClient.Data(ctx, api.Request{Method: http.MethodDelete, Path: path})
	return wrapError(err)
}

// Int returns a pointer to v. It is a convenience for filling the optional
// integer fields of parameter structs, where a nil pointer means "do not
// send" and a pointer to zero sends a meaningful zero.
func Int(v int) *int {
	return &v
}
