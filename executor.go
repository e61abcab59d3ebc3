package fincode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/joshuawatkins04/fincode-go/internal/query"
	"github.com/joshuawatkins04/fincode-go/internal/transport"
)

// RequestOptions are per-call header overrides.
type RequestOptions struct {
	// IdempotencyKey lets the API deduplicate a retried mutating request.
	IdempotencyKey string
	// TenantShopID scopes a platform request to one tenant shop.
	TenantShopID string
}

func (o *RequestOptions) headers() transport.Headers {
	if o == nil {
		return transport.Headers{}
	}
	return transport.Headers{
		IdempotencyKey: o.IdempotencyKey,
		TenantShopID:   o.TenantShopID,
	}
}

// endpoint describes one REST operation. path may contain %s verbs that are
// filled with path-escaped IDs by at.
type endpoint struct {
	method string
	path   string
}

func (e endpoint) at(ids ...string) endpoint {
	if len(ids) == 0 {
		return e
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return endpoint{method: e.method, path: fmt.Sprintf(e.path, args...)}
}

// call carries the optional parts of a request.
type call struct {
	query       any
	body        any
	opts        *RequestOptions
	contentType string
}

// do sends ep and decodes a successful response into a new T.
func do[T any](ctx context.Context, c *Client, ep endpoint, args call) (*T, error) {
	headers := args.opts.headers()
	headers.ContentType = args.contentType

	var out T
	err := c.execute(ctx, transport.Request{
		Method:  ep.method,
		Path:    ep.path,
		Query:   args.query,
		Body:    args.body,
		Headers: headers,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// errorEnvelope is the body of every non-2xx response.
type errorEnvelope struct {
	Errors  []APIErrorObject `json:"errors"`
	Message json.RawMessage  `json:"message"`
}

// execute sends req, then resolves the response: 2xx bodies are decoded into
// out, other statuses become a *ProviderError. Failures without a usable
// response become a *TransportError, and requests that cannot be built a
// *ConfigurationError. Nothing is retried.
func (c *Client) execute(ctx context.Context, req transport.Request, out any) error {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		var terr *transport.Error
		if errors.As(err, &terr) {
			switch terr.Stage {
			case transport.StageBuild:
				if errors.Is(err, query.ErrKeyNotDefined) {
					return &ConfigurationError{Message: query.ErrKeyNotDefined.Error(), Err: err}
				}
				return &ConfigurationError{Message: "invalid request", Err: err}
			case transport.StageRead:
				if !interrupted(ctx, err) {
					return &TransportError{Message: MessageParseFailed, Cause: err}
				}
			}
		}
		return &TransportError{Message: MessageFetchFailed, Cause: err}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return &TransportError{Message: MessageParseFailed, Cause: err}
	}

	if resp.IsSuccess() {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &TransportError{Message: MessageParseFailed, Cause: err}
		}
		return nil
	}

	envelope := decodeEnvelope(raw)
	perr := &ProviderError{
		Status:      resp.StatusCode,
		Errors:      envelope.Errors,
		RateLimited: truthy(envelope.Message),
	}
	c.logger.DebugContext(ctx, "fincode provider error",
		"method", req.Method,
		"path", req.Path,
		"status", perr.Status,
		"category", string(perr.Category()),
	)
	return perr
}

// interrupted reports whether err was caused by a deadline or cancellation
// rather than by the response itself.
func interrupted(ctx context.Context, err error) bool {
	var nerr net.Error
	return ctx.Err() != nil ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.As(err, &nerr) && nerr.Timeout()
}

// decodeEnvelope reads the errors and message members of a non-2xx body.
// Members of an unexpected shape are ignored, so any JSON body yields a
// *ProviderError.
func decodeEnvelope(raw json.RawMessage) errorEnvelope {
	var envelope errorEnvelope

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return envelope
	}
	envelope.Message = members["message"]

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(members["errors"], &items); err != nil {
		return envelope
	}
	for _, item := range items {
		envelope.Errors = append(envelope.Errors, APIErrorObject{
			Code:    jsonString(item["error_code"]),
			Message: jsonString(item["error_message"]),
		})
	}
	return envelope
}

// jsonString returns v when it is a JSON string and "" otherwise.
func jsonString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// truthy reports whether a JSON value is present and not a falsy literal.
func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", "0", `""`:
		return false
	default:
		return true
	}
}

// Do sends a request to an arbitrary path and returns the raw JSON of a
// successful response. It is the escape hatch for endpoints without a typed
// method; errors are the same as for typed calls.
func (c *Client) Do(ctx context.Context, method, path string, body, params any, opts *RequestOptions) (json.RawMessage, error) {
	raw, err := do[json.RawMessage](ctx, c, endpoint{method: method, path: path}, call{
		query: params,
		body:  body,
		opts:  opts,
	})
	if err != nil {
		return nil, err
	}
	return *raw, nil
}
