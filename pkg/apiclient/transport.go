package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	pathRefresh  = "/auth/refresh-token"
	pathLogout   = "/auth/logout"
	genericError = "Something went wrong, please try again"
)

// ResponseError is a non-2xx response. Message comes from the server
// envelope when there was one.
type ResponseError struct {
	Code    int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("apiclient: HTTP %d", e.Code)
	}
	return fmt.Sprintf("apiclient: HTTP %d: %s", e.Code, e.Message)
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any

	// noRetry skips the 401 refresh interceptor.
	noRetry bool
}

// do runs req and decodes the envelope's data into out. A 401 triggers at
// most one refresh and replay per call.
func (c *Client) do(ctx context.Context, req request, out any) error {
	attempts := 0
	for {
		code, raw, err := c.send(ctx, req)
		if err != nil {
			return err
		}

		if code == http.StatusUnauthorized && !req.noRetry && attempts == 0 {
			attempts++
			if pair := c.RefreshToken(ctx); pair != nil {
				continue
			}
			c.l.Warnf(ctx, "apiclient.do %s %s: refresh failed, signing out", req.method, req.path)
			c.Logout(ctx)
			c.nav.Navigate(RouteSignIn)
		}

		var env Envelope[json.RawMessage]
		decodeErr := json.Unmarshal(raw, &env)

		if code < 200 || code > 299 {
			return &ResponseError{Code: code, Message: env.Message}
		}
		if decodeErr != nil {
			return fmt.Errorf("apiclient: decode %s %s: %w", req.method, req.path, decodeErr)
		}
		if env.Status == StatusError {
			return &ResponseError{Code: code, Message: env.Message}
		}
		if out == nil || len(env.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("apiclient: decode %s %s data: %w", req.method, req.path, err)
		}
		return nil
	}
}

func (c *Client) send(ctx context.Context, req request) (int, []byte, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return 0, nil, fmt.Errorf("apiclient: encode %s %s: %w", req.method, req.path, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	if c.env != "" {
		httpReq.Header.Set(HeaderClientEnv, c.env)
	}
	if pair, ok := c.tokens.Tokens(); ok && pair.AccessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, raw, nil
}

// call runs req and folds the outcome into an envelope. Cancellation by the
// caller becomes StatusIgnore.
func call[T any](ctx context.Context, c *Client, req request) Envelope[T] {
	var data T
	err := c.do(ctx, req, &data)
	if err == nil {
		return Envelope[T]{Status: StatusSuccess, Data: data}
	}
	return failure[T](ctx, c, req, err)
}

func failure[T any](ctx context.Context, c *Client, req request, err error) Envelope[T] {
	if errors.Is(err, context.Canceled) {
		return Envelope[T]{Status: StatusIgnore}
	}

	var se *ResponseError
	if errors.As(err, &se) {
		msg := se.Message
		if msg == "" {
			msg = genericError
		}
		c.l.Warnf(ctx, "apiclient %s %s: %v", req.method, req.path, err)
		return Envelope[T]{Status: StatusError, Message: msg, Code: se.Code}
	}

	c.l.Errorf(ctx, "apiclient %s %s: %v", req.method, req.path, err)
	return Envelope[T]{Status: StatusError, Message: genericError}
}
