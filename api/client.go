// Package api is a client for the Kite trading REST API. It resolves
// credentials at construction time, attaches the versioned authorization
// headers to every request, and translates failed responses into the
// classified errors of the kiteerrors package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/elliot-anderson-afk/kite-api-wrapper/configs"
	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
	"github.com/elliot-anderson-afk/kite-api-wrapper/utils/log"
)

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://api.kite.trade"
	// DefaultTimeout bounds every round trip unless overridden.
	DefaultTimeout = 7 * time.Second

	apiVersion = "3"
	userAgent  = "kite-api-wrapper/1.0"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// ClientConfig is the explicit construction-time configuration of a Client.
// Credential fields left empty are resolved from the environment and the
// credential file, per field, in that order.
type ClientConfig struct {
	APIKey      string
	APISecret   string
	AccessToken string
	// ConfigPath overrides the default <home>/.kite/config.ini location.
	ConfigPath string
	// BaseURL overrides the production API host.
	BaseURL string
	// Debug raises the log level to DEBUG for request/response tracing.
	Debug bool
	// Timeout bounds each round trip; zero means DefaultTimeout.
	Timeout time.Duration
	// Proxy routes all requests through the given proxy URL when set.
	Proxy *url.URL
}

// Client is a Kite REST API client. Calls are synchronous blocking round
// trips; the client holds no in-flight state and is not safe for concurrent
// use while the access token is being replaced.
type Client struct {
	creds      *configs.Credentials
	resolver   *configs.Resolver
	baseURL    string
	httpClient *http.Client
	header     http.Header
}

// NewClient resolves the credentials and returns a ready client. If an
// access token was resolved the client starts authenticated and the login
// and session-exchange steps can be skipped entirely.
func NewClient(conf ClientConfig) (*Client, error) {
	return newClient(conf, configs.NewResolver())
}

func newClient(conf ClientConfig, resolver *configs.Resolver) (*Client, error) {
	creds, err := resolver.Resolve(configs.Credentials{
		APIKey:      conf.APIKey,
		APISecret:   conf.APISecret,
		AccessToken: conf.AccessToken,
		Path:        conf.ConfigPath,
	})
	if err != nil {
		return nil, err
	}

	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}

	baseURL := conf.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := conf.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if conf.Proxy != nil {
		httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(conf.Proxy)}
	}

	c := &Client{
		creds:      creds,
		resolver:   resolver,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
	c.updateHeaders()
	return c, nil
}

// APIKey returns the resolved API key.
func (c *Client) APIKey() string {
	return c.creds.APIKey
}

// AccessToken returns the current access token, empty before login.
func (c *Client) AccessToken() string {
	return c.creds.AccessToken
}

// updateHeaders recomputes the header state from the current credentials.
// Called at construction and whenever the access token changes.
func (c *Client) updateHeaders() {
	h := http.Header{}
	h.Set("X-Kite-Version", apiVersion)
	h.Set("User-Agent", userAgent)
	if c.creds.APIKey != "" {
		h.Set("Authorization", fmt.Sprintf("token %s:%s", c.creds.APIKey, c.creds.AccessToken))
	}
	c.header = h
}

// transportResult is the raw outcome of one completed HTTP round trip.
type transportResult struct {
	status      int
	contentType string
	body        []byte
}

// roundTrip performs one HTTP request. Transport-level failures, including
// timeouts, surface as Network-kind errors; the response body is consumed
// and closed on every path.
func (c *Client) roundTrip(ctx context.Context, method, route string, query url.Values,
	body []byte, contentType string,
) (*transportResult, error) {
	uri := c.baseURL + route
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create an http request")
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log.Debug("request: %s %s", method, uri)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, kiteerrors.New(kiteerrors.Network, fmt.Sprintf("network error: %v", err))
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, kiteerrors.New(kiteerrors.Network,
			fmt.Sprintf("failed to read the response body: %v", err))
	}
	log.Debug("response: %d %s", resp.StatusCode, b)

	return &transportResult{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        b,
	}, nil
}

// doJSON performs a round trip against a JSON route and decodes the
// envelope's data payload into out. A nil out discards the payload.
func (c *Client) doJSON(ctx context.Context, method, route string, query url.Values,
	body []byte, contentType string, out interface{},
) error {
	res, err := c.roundTrip(ctx, method, route, query, body, contentType)
	if err != nil {
		return err
	}
	data, _, err := classify(res)
	if err != nil {
		return err
	}
	if out == nil || data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return kiteerrors.New(kiteerrors.Data,
			fmt.Sprintf("failed to decode the response payload: %v", err))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, route string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, route, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, route string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return kiteerrors.New(kiteerrors.Input,
			fmt.Sprintf("failed to encode the request payload: %v", err))
	}
	return c.doJSON(ctx, method, route, nil, body, contentTypeJSON, out)
}

func (c *Client) postForm(ctx context.Context, route string, form url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, route, nil, []byte(form.Encode()), contentTypeForm, out)
}

func (c *Client) deleteJSON(ctx context.Context, route string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodDelete, route, query, nil, "", out)
}

// getText performs a round trip against a route that returns a raw text
// body, such as the CSV instrument dump.
func (c *Client) getText(ctx context.Context, route string, query url.Values) (string, error) {
	res, err := c.roundTrip(ctx, http.MethodGet, route, query, nil, "")
	if err != nil {
		return "", err
	}
	_, text, err := classify(res)
	if err != nil {
		return "", err
	}
	return text, nil
}
