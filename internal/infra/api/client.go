// Package api implements the ports to the storefront REST API over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const maxResponseBytes = 1 << 20

// Client is the shared HTTP transport for all API ports. It attaches the
// bearer token to every request and invalidates the session on any 401, so
// the rest of the core only ever sees the typed Unauthorized error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    service.SessionGateway
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, session service.SessionGateway, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		session: session,
		logger:  logger,
	}
}

// statusError carries a non-2xx response so each port can map it to its
// own domain error, with the server message kept verbatim.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("server returned status %d", e.status)
	}

	return fmt.Sprintf("server returned status %d: %s", e.status, e.message)
}

// envelope is the server's uniform response shape.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do performs one request. A nil out skips response decoding. Transport
// failures surface as NetworkFailure, 401 invalidates the session and
// surfaces Unauthorized, and other non-2xx statuses surface as statusError
// for the caller to map.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to serialize request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if token, ok := c.session.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The session contract: any 401 invalidates the stored token.
		if err := c.session.Invalidate(ctx); err != nil {
			c.logger.Error("Failed to invalidate session after 401", "error", err)
		}

		return domainerrors.ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{
			status:  resp.StatusCode,
			message: serverMessage(respBody),
		}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	if len(env.Data) == 0 {
		return errors.New("response carried no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "failed to decode response data")
	}

	return nil
}

// serverMessage extracts the human-facing message from an error response
// body, when the server provided one.
func serverMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}

	return env.Error.Message
}
