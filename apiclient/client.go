package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

const refreshPath = "/auth/refresh"

// Client issues JSON requests against the payments platform, attaching the
// stored bearer token. A 401 answer triggers exactly one token refresh and
// one replay of the original request; a second 401 surfaces to the caller
// and clears the stored token. The refresh credential is an HTTP-only cookie
// held by the client's cookie jar.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	logger  *zap.Logger
}

func NewClient(baseURL string, store TokenStore, logger *zap.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		store:  store,
		logger: logger,
	}
}

// TokenStore exposes the store so the login/logout flows can write it.
func (c *Client) TokenStore() TokenStore {
	return c.store
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do runs one request with the refresh-and-replay protocol.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	status, respBody, err := c.roundTrip(ctx, method, path, payload, c.store.Token())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		firstErr := decodeError(status, respBody)

		if refreshErr := c.refresh(ctx); refreshErr != nil {
			c.logger.Warn("token refresh failed",
				zap.String("path", path),
				zap.Error(refreshErr))
			if clearErr := c.store.Clear(); clearErr != nil {
				c.logger.Warn("failed to clear stored token", zap.Error(clearErr))
			}
			return firstErr
		}

		status, respBody, err = c.roundTrip(ctx, method, path, payload, c.store.Token())
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			// One refresh per request; do not loop.
			if clearErr := c.store.Clear(); clearErr != nil {
				c.logger.Warn("failed to clear stored token", zap.Error(clearErr))
			}
			return decodeError(status, respBody)
		}
	}

	if status < 200 || status >= 300 {
		return decodeError(status, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err = json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, token string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// refresh calls the refresh endpoint once and stores the returned token. The
// request goes out without a bearer header; the cookie jar supplies the
// refresh credential.
func (c *Client) refresh(ctx context.Context) error {
	status, respBody, err := c.roundTrip(ctx, http.MethodPost, refreshPath, nil, "")
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return decodeError(status, respBody)
	}

	var pair models.TokenPair
	if err = json.Unmarshal(respBody, &pair); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if pair.AccessToken != "" {
		if err = c.store.SetToken(pair.AccessToken); err != nil {
			return fmt.Errorf("failed to store refreshed token: %w", err)
		}
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	return &APIError{Status: status, Message: msg}
}
