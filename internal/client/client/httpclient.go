package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/common"
	"github.com/dmitrijs2005/myrecords/internal/metrics"
)

const (
	tracerName  = "github.com/dmitrijs2005/myrecords/internal/client/client"
	maxBodySize = 4 << 20
)

// HTTPClient talks JSON over HTTP to the records backend.
type HTTPClient struct {
	baseURL  *url.URL
	http     *http.Client
	tokens   TokenSource
	limiter  *rate.Limiter
	recorder metrics.Recorder
	tracer   trace.Tracer
	newID    func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithRateLimit paces outbound calls to rps per second. Zero or less
// disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(c *HTTPClient) {
		if r != nil {
			c.recorder = r
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *HTTPClient) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewHTTPClient builds a client for the backend at baseURL. tokens supplies
// the bearer token for authenticated endpoints.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api base url %q: want http(s)://host[:port]", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("token source is required")
	}

	c := &HTTPClient{
		baseURL:  u,
		http:     &http.Client{},
		tokens:   tokens,
		recorder: metrics.Nop{},
		tracer:   otel.Tracer(tracerName),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Register(ctx context.Context, in models.UserPayload) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, "register", http.MethodPost, "/api/users", false, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, in models.Credentials) (*models.LoginResult, error) {
	var out models.LoginResult
	if err := c.do(ctx, "login", http.MethodPost, "/api/login", false, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, in models.UserPayload) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, "update_user", http.MethodPut, "/api/users", true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, in models.PasswordChange) error {
	return c.do(ctx, "update_password", http.MethodPut, "/api/users/account", true, in, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context) error {
	return c.do(ctx, "delete_user", http.MethodDelete, "/api/users", true, nil, nil)
}

func (c *HTTPClient) ListRecords(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "list_records", http.MethodGet, "/api/records", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetRecord(ctx context.Context, id int64) (*models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "get_record", http.MethodGet, recordPath(id), true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateRecord(ctx context.Context, in models.RecordPayload) (*models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "create_record", http.MethodPost, "/api/records", true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateRecord(ctx context.Context, id int64, in models.RecordPayload) (*models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "update_record", http.MethodPut, recordPath(id), true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteRecord(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_record", http.MethodDelete, recordPath(id), true, nil, nil)
}

func recordPath(id int64) string {
	return "/api/records/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, authed bool, in, out any) error {
	ctx, span := c.tracer.Start(ctx, "api."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		))
	defer span.End()

	status, err := c.roundTrip(ctx, op, method, path, authed, in, out)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, op+" failed")
	}
	return err
}

func (c *HTTPClient) roundTrip(ctx context.Context, op, method, path string, authed bool, in, out any) (int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
		}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, c.newID())

	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return 0, fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.recorder.RecordTransportError(op)
		return 0, fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	}
	defer resp.Body.Close()
	c.recorder.RecordResponse(op, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read %s response: %w", ErrUnavailable, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", op, err)
	}
	return resp.StatusCode, nil
}
