// Package pasteapi is the REST client for the paste backend.
//
// The backend exposes four endpoints:
//
//	GET  /pastes       list all pastes
//	GET  /pastes/{id}  fetch one paste
//	POST /pastes       create a paste
//	PUT  /pastes/{id}  update a paste
//
// Every call is a single attempt. Transport failures and non-2xx statuses are
// returned as errors wrapped with the operation name, as are undecodable list
// and get bodies. A 2xx create or update is a success whatever its body.
package pasteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pastepad/internal/jsonutil"
	"pastepad/internal/logx"
	"pastepad/internal/paste"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:3000"

// RequestIDHeader carries a per-request UUID for correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

const tracerName = "pastepad/pasteapi"

// Client talks to the paste backend.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTracer replaces the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse base URL %q", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, errors.Errorf("base URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    cleanhttp.DefaultPooledClient(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// List fetches all pastes in backend order.
func (c *Client) List(ctx context.Context) ([]paste.Paste, error) {
	body, err := c.do(ctx, "list pastes", http.MethodGet, "/pastes", nil)
	if err != nil {
		return nil, err
	}
	return jsonutil.UnmarshalArrayAllowEmpty[paste.Paste](body, "list pastes: decode response")
}

// Get fetches a single paste by identifier.
func (c *Client) Get(ctx context.Context, id string) (paste.Paste, error) {
	if id == "" {
		return paste.Paste{}, errors.New("get paste: empty identifier")
	}
	body, err := c.do(ctx, "get paste", http.MethodGet, pastePath(id), nil)
	if err != nil {
		return paste.Paste{}, err
	}
	var p paste.Paste
	if err := jsonutil.UnmarshalWithContext(body, &p, "get paste: decode response"); err != nil {
		return paste.Paste{}, err
	}
	return p, nil
}

// Create sends a new paste. The returned Paste carries the assigned identifier
// when the backend echoes one.
func (c *Client) Create(ctx context.Context, d paste.Draft) (paste.Paste, error) {
	body, err := c.do(ctx, "create paste", http.MethodPost, "/pastes", d)
	if err != nil {
		return paste.Paste{}, err
	}
	return decodeSaved(body, "create paste"), nil
}

// Update replaces the paste addressed by id.
func (c *Client) Update(ctx context.Context, id string, d paste.Draft) (paste.Paste, error) {
	if id == "" {
		return paste.Paste{}, errors.New("update paste: empty identifier")
	}
	body, err := c.do(ctx, "update paste", http.MethodPut, pastePath(id), d)
	if err != nil {
		return paste.Paste{}, err
	}
	return decodeSaved(body, "update paste"), nil
}

// decodeSaved reads back the stored paste when the backend echoes it. The
// save already succeeded, so an empty or unreadable body yields a zero Paste.
func decodeSaved(body []byte, op string) paste.Paste {
	var p paste.Paste
	if len(bytes.TrimSpace(body)) == 0 {
		return p
	}
	if err := jsonutil.UnmarshalWithContext(body, &p, op+": decode response"); err != nil {
		logx.Debug().Err(err).Str("op", op).Msg("ignoring undecodable save response")
		return paste.Paste{}
	}
	return p
}

func pastePath(id string) string {
	return "/pastes/" + url.PathEscape(id)
}

// do performs one request inside a client span and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "pasteapi "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
	defer span.End()

	body, err := c.roundTrip(ctx, op, method, path, payload, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, payload any, span trace.Span) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode request", op)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: build request", op)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	span.SetAttributes(attribute.String("http.request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: %s %s", op, method, path)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read response", op)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: msg}
	}
	return data, nil
}
