// Package rest provides core functions for
// network requests to StandX API endpoints
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/mo"
	"github.com/standx/go-standx/auth"
	"github.com/standx/go-standx/constants"
)

// DEFAULT_TIMEOUT bounds every request when no timeout is configured.
const DEFAULT_TIMEOUT = 30 * time.Second

type Client struct {
	baseUrl   string
	token     mo.Option[string]
	signer    *auth.Signer
	sessionId mo.Option[string]
	timeout   time.Duration
}

// ClientInterface defines the contract for REST API calls
type ClientInterface interface {
	// Get sends a bearer-authenticated GET request when a token is held.
	Get(ctx context.Context, path string, query url.Values, result any) error
	// GetPublic sends an unauthenticated GET request.
	GetPublic(ctx context.Context, path string, query url.Values, result any) error
	// Post sends a signed POST request.
	Post(ctx context.Context, path string, body any, result any) error
}

type Config struct {
	// BaseUrl is the base URL for the StandX API
	// If none is provided, the mainnet url will be used
	BaseUrl string
	// Token is the bearer session credential. Optional: public queries
	// work without it, signed requests merge it in when present.
	Token string
	// Signer holds the session signing keypair used for signed requests.
	// Required only for Post.
	Signer *auth.Signer
	// SessionId is forwarded on signed requests so order events on the
	// websocket API can be correlated with their HTTP submissions.
	SessionId string
	// Timeout bounds each request. Defaults to DEFAULT_TIMEOUT.
	Timeout time.Duration
}

// New creates a new client instance with the
// provided configuration.
func New(c Config) *Client {
	var baseUrl string = c.BaseUrl
	var token mo.Option[string]
	var sessionId mo.Option[string]
	timeout := DEFAULT_TIMEOUT

	if c.BaseUrl == "" {
		baseUrl = constants.MAINNET_API_URL
	}
	if c.Token != "" {
		token = mo.Some(c.Token)
	}
	if c.SessionId != "" {
		sessionId = mo.Some(c.SessionId)
	}
	if c.Timeout != 0 {
		timeout = c.Timeout
	}

	client := &Client{
		baseUrl:   baseUrl,
		token:     token,
		signer:    c.Signer,
		sessionId: sessionId,
		timeout:   timeout,
	}

	return client
}

// Get sends a GET request to the specified path, attaching the bearer
// token when one is held.
func (c *Client) Get(
	ctx context.Context,
	path string,
	query url.Values,
	result any,
) error {
	return c.do(ctx, http.MethodGet, path, query, nil, false, true, result)
}

// GetPublic sends a GET request without any authentication headers.
func (c *Client) GetPublic(
	ctx context.Context,
	path string,
	query url.Values,
	result any,
) error {
	return c.do(ctx, http.MethodGet, path, query, nil, false, false, result)
}

// Post sends a signed POST request to the specified path. The body is
// serialized once and those exact bytes are both signed and sent; the
// bearer token is merged in when one is held.
func (c *Client) Post(
	ctx context.Context,
	path string,
	body any,
	result any,
) error {
	return c.do(ctx, http.MethodPost, path, nil, body, true, true, result)
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	signed bool,
	useBearer bool,
	result any,
) error {
	r := resty.
		New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	endpoint := c.baseUrl + path

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := r.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	if signed {
		if c.signer == nil {
			return &RequestError{Message: "signed request requires a signer"}
		}

		// The signature covers the exact body bytes, so marshal once and
		// send that same string.
		payload := "{}"
		if body != nil {
			raw, err := json.Marshal(body)
			if err != nil {
				return &RequestError{
					Message: "failed to encode request body",
					Err:     err,
				}
			}
			payload = string(raw)
		}

		req.SetHeaders(c.signer.SignatureHeaders(payload, c.sessionId.OrElse("")))
		req.SetBody([]byte(payload))
	}

	if useBearer {
		if token, ok := c.token.Get(); ok {
			req.SetAuthToken(token)
		}
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return &RequestError{Message: "request failed", Err: err}
	}

	return handleResponse(resp, result)
}
