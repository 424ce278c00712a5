package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"formcraft/internal/config"
	"formcraft/internal/logging"
	"formcraft/internal/model"
)

// Notifier shows a blocking message to the user
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// File is a local file picked for upload
type File struct {
	Name string
	Data []byte
}

// NewFileFromPath reads a file from disk
func NewFileFromPath(p string) (*File, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return &File{Name: filepath.Base(p), Data: data}, nil
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: %d %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s failed: %d", e.Op, e.StatusCode)
}

// Client talks to the formcraft HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier
	log        *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNotifier sets where upload failures are reported
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the API at baseURL (trailing slash stripped)
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: config.NormalizeBaseURL(baseURL),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		notifier: nopNotifier{},
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api_client")
	return c
}

// BaseURL returns the API base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL turns a server-relative content URL into an absolute one
func (c *Client) ResolveURL(u string) string {
	if u == "" {
		return ""
	}
	if parsed, err := url.Parse(u); err == nil && parsed.IsAbs() {
		return u
	}
	return c.baseURL + u
}

// Upload sends f as the multipart field "file". Failures are reported
// through the notifier and yield an empty result.
func (c *Client) Upload(ctx context.Context, f *File) (model.UploadResult, error) {
	res, err := c.upload(ctx, f)
	if err != nil {
		c.notifier.Notify("File upload error: " + err.Error())
		return model.UploadResult{}, err
	}
	return res, nil
}

func (c *Client) upload(ctx context.Context, f *File) (model.UploadResult, error) {
	var res model.UploadResult
	if f == nil {
		return res, fmt.Errorf("no file")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", f.Name)
	if err != nil {
		return res, fmt.Errorf("build upload body: %w", err)
	}
	if _, err := fw.Write(f.Data); err != nil {
		return res, fmt.Errorf("build upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return res, fmt.Errorf("build upload body: %w", err)
	}

	err = c.doRequest(ctx, "upload", http.MethodPost, "/api/upload/single", mw.FormDataContentType(), &buf, &res)
	return res, err
}

// CreateForm posts a new form document
func (c *Client) CreateForm(ctx context.Context, req *model.CreateFormRequest) (*model.FormEnvelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	var env model.FormEnvelope
	if err := c.doRequest(ctx, "save", http.MethodPost, "/api/forms", "application/json", bytes.NewReader(body), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// GetForm fetches a form by id
func (c *Client) GetForm(ctx context.Context, id string) (*model.FormEnvelope, error) {
	var env model.FormEnvelope
	if err := c.doRequest(ctx, "fetch", http.MethodGet, "/api/forms/"+url.PathEscape(id), "", nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ListForms fetches the saved forms, newest first
func (c *Client) ListForms(ctx context.Context) ([]*model.Form, error) {
	var env model.FormListEnvelope
	if err := c.doRequest(ctx, "list forms", http.MethodGet, "/api/forms", "", nil, &env); err != nil {
		return nil, err
	}
	return env.Forms, nil
}

// SubmitResponse posts an answer set for a form
func (c *Client) SubmitResponse(ctx context.Context, formID string, req *model.SubmitResponseRequest) (*model.ResponseEnvelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	var env model.ResponseEnvelope
	path := "/api/forms/" + url.PathEscape(formID) + "/responses"
	if err := c.doRequest(ctx, "submit", http.MethodPost, path, "application/json", bytes.NewReader(body), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ListResponses fetches the responses collected for a form
func (c *Client) ListResponses(ctx context.Context, formID string) ([]*model.Response, error) {
	var env model.ResponseListEnvelope
	path := "/api/forms/" + url.PathEscape(formID) + "/responses"
	if err := c.doRequest(ctx, "list responses", http.MethodGet, path, "", nil, &env); err != nil {
		return nil, err
	}
	return env.Responses, nil
}

// doRequest performs one round trip and decodes a 2xx JSON body into out
func (c *Client) doRequest(ctx context.Context, op, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	c.log.DebugContext(ctx, "api response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{Op: op, StatusCode: resp.StatusCode}
		var env model.ErrorEnvelope
		if json.Unmarshal(respBody, &env) == nil {
			serr.Message = env.Message
		}
		return serr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
