// Package mindly is the Go client for the Mindly emotional-wellbeing
// backend. It covers both user roles: patients (daily records, AI
// suggestions) and psychologists (roster, alerts, clinical feedback).
package mindly

import (
	"context"
	"net/http"
	"time"

	"github.com/mindly/mindly-client/internal/api"
)

// DefaultHTTPTimeout bounds every request. Operations fail with a generic
// message on expiry; nothing retries automatically.
const DefaultHTTPTimeout = 10 * time.Second

// DefaultPageSize is the single fixed page requested from list endpoints.
const DefaultPageSize = 50

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means "not logged in" and leaves the request untouched, so
// the auth endpoints work through the same client.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource for a token known up front.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	pageSize int
}

// New constructs a Client for the given base URL. Additional options can be
// provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errEmptyBaseURL
	}

	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
		pageSize: DefaultPageSize,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the HTTP transport so the Authorization header is attached to
	// every request once a token is available.
	c.wrapTransportWithToken()

	return c, nil
}

// NewFromConfig constructs a Client from environment-driven configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout), WithPageSize(cfg.PageSize)}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}

// wrapTransportWithToken wraps the HTTP client's transport to add the
// Authorization header from the configured TokenSource.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &tokenTransport{
		base:   baseTransport,
		tokens: c.tokens,
	}
}

// tokenTransport wraps an http.RoundTripper to attach the bearer token.
type tokenTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok := ""
	if t.tokens != nil {
		tok = t.tokens.Token()
	}
	if tok == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a patient account and returns the identity plus token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	res, err := api.Register(ctx, c.http, c.baseURL, req)
	observe("register", err)
	return res, err
}

// Login exchanges credentials for a bearer token and role.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	res, err := api.Login(ctx, c.http, c.baseURL, req)
	observe("login", err)
	return res, err
}

// --------------------------------------------------------------------
// Record operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateRecord submits a new daily record and returns it with the
// server-assigned id.
func (c *Client) CreateRecord(ctx context.Context, req CreateRecordRequest) (*DailyRecord, error) {
	rec, err := api.CreateRecord(ctx, c.http, c.baseURL, req)
	observe("create_record", err)
	return rec, err
}

// ListRecords retrieves a patient's records in the server's order (newest
// first). The client never re-sorts.
func (c *Client) ListRecords(ctx context.Context, email string) ([]DailyRecord, error) {
	page, err := api.ListRecords(ctx, c.http, c.baseURL, email, c.pageSize)
	observe("list_records", err)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

// UpdateRecord applies a partial update; only supplied fields are sent.
func (c *Client) UpdateRecord(ctx context.Context, id int64, patch RecordPatch) (*DailyRecord, error) {
	rec, err := api.UpdateRecord(ctx, c.http, c.baseURL, id, patch)
	observe("update_record", err)
	return rec, err
}

// DeleteRecord removes a record permanently. Callers drop the row from local
// state only after this returns nil.
func (c *Client) DeleteRecord(ctx context.Context, id int64) error {
	err := api.DeleteRecord(ctx, c.http, c.baseURL, id)
	observe("delete_record", err)
	return err
}

// ListAlerts returns the current alert signals across all patients.
func (c *Client) ListAlerts(ctx context.Context) ([]AlertSignal, error) {
	alerts, err := api.ListAlerts(ctx, c.http, c.baseURL)
	observe("list_alerts", err)
	return alerts, err
}

// --------------------------------------------------------------------
// Patient operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPatients retrieves the roster, one fixed-size page sorted by name.
func (c *Client) ListPatients(ctx context.Context) ([]Patient, error) {
	page, err := api.ListPatients(ctx, c.http, c.baseURL, c.pageSize)
	observe("list_patients", err)
	if err != nil {
		return nil, err
	}
	return page.Patients, nil
}

// GetPatientByEmail fetches one patient by the email natural key.
func (c *Client) GetPatientByEmail(ctx context.Context, email string) (*Patient, error) {
	p, err := api.GetPatientByEmail(ctx, c.http, c.baseURL, email)
	observe("get_patient", err)
	return p, err
}

// SaveFeedback overwrites the patient's clinical observation wholesale.
func (c *Client) SaveFeedback(ctx context.Context, email, feedback string) (*Patient, error) {
	p, err := api.SaveFeedback(ctx, c.http, c.baseURL, email, feedback)
	observe("save_feedback", err)
	return p, err
}

// --------------------------------------------------------------------
// AI suggestion - delegated to internal/api
// --------------------------------------------------------------------

// Suggest requests a mood-support suggestion for the given context.
func (c *Client) Suggest(ctx context.Context, req SuggestionRequest) (*Suggestion, error) {
	s, err := api.Suggest(ctx, c.http, c.baseURL, req)
	observe("suggest", err)
	return s, err
}
