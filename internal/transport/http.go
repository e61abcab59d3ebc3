// Package transport builds and sends HTTP requests to the fincode API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Request represents an HTTP request to be made.
type Request struct {
	Method string
	Path   string
	// Query is encoded with query.Encode; nil sends no query string.
	Query any
	// Body is sent as JSON unless it is an io.Reader or []byte, which are
	// sent as-is.
	Body    any
	Headers Headers
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Transport handles HTTP communication with the API.
type Transport struct {
	Config     Config
	HTTPClient HTTPDoer
	Logger     *slog.Logger
}

// HTTPDoer is an interface for HTTP operations.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Stage identifies where a request failed.
type Stage string

const (
	// StageBuild covers URL, header and body construction.
	StageBuild Stage = "build"
	// StageSend covers the network round trip up to the response headers.
	StageSend Stage = "send"
	// StageRead covers reading the response body.
	StageRead Stage = "read"
)

// Error is returned by Do for failures that produced no usable response.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s request: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Do executes an HTTP request and returns the response.
func (t *Transport) Do(ctx context.Context, req Request) (*Response, error) {
	fullURL, err := BuildURL(t.Config, req.Path, req.Query)
	if err != nil {
		return nil, &Error{Stage: StageBuild, Err: err}
	}

	bodyReader, err := encodeBody(req.Body)
	if err != nil {
		return nil, &Error{Stage: StageBuild, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, &Error{Stage: StageBuild, Err: err}
	}

	for key, value := range BuildHeaders(t.Config, req.Headers) {
		httpReq.Header[key] = []string{value}
	}

	logger := t.logger().With("method", req.Method, "path", req.Path)
	start := time.Now()

	resp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		logger.WarnContext(ctx, "fincode request failed", "error", err, "duration", time.Since(start))
		return nil, &Error{Stage: StageSend, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WarnContext(ctx, "fincode response read failed", "status", resp.StatusCode, "error", err)
		return nil, &Error{Stage: StageRead, Err: err}
	}

	logger.DebugContext(ctx, "fincode request",
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}

func (t *Transport) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t.Logger
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return b, nil
	case []byte:
		return bytes.NewReader(b), nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
