// Package client is the remote fetcher: a thin JSON-over-HTTP client for the
// HR list API. Every failure is returned as a typed FetchFailure,
// MutationFailure or ExportFailure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/utils"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// HRClient talks to the HR REST API.
type HRClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// Option configures an HRClient.
type Option func(*HRClient)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *HRClient) { c.Token = token }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *HRClient) {
		if d > 0 {
			c.HTTPClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HRClient) { c.HTTPClient = hc }
}

// NewHRClient creates a new HR API client
func NewHRClient(baseURL string, opts ...Option) *HRClient {
	c := &HRClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: constants.DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is a non-2xx response.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// newRequest builds a request with auth and request id headers.
func (c *HRClient) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}
	req.Header.Set(constants.HeaderXRequestID, utils.GenerateID())
	if c.Token != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+c.Token)
	}
	return req, nil
}

// do sends req and returns the response for a 2xx status. Non-2xx responses
// are drained and reported as *apiError.
func (c *HRClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		respBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, &apiError{Status: resp.StatusCode, Message: errorMessage(respBytes)}
	}
	return resp, nil
}

// doJSON executes a request and decodes a JSON body into result when non-nil.
func (c *HRClient) doJSON(ctx context.Context, method, path string, body, result interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the message out of an error envelope, falling back to
// the raw body.
func errorMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return strings.TrimSpace(string(body))
}

// splitError separates an HTTP status from a transport cause.
func splitError(err error) (int, string, error) {
	if ae, ok := err.(*apiError); ok {
		return ae.Status, ae.Message, nil
	}
	return 0, "", err
}

func fetchFailure(op string, resource constants.Resource, err error) error {
	status, msg, cause := splitError(err)
	return apperrors.NewFetchFailure(op, string(resource), status, msg, cause)
}

func mutationFailure(op string, resource constants.Resource, err error) error {
	status, msg, cause := splitError(err)
	return apperrors.NewMutationFailure(op, string(resource), status, msg, cause)
}
