// Package remote is the console's only way to reach the backend. It attaches
// the session credential, decodes JSON and maps failures onto the error
// taxonomy every view handles the same way.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/pkg/clients"
)

type Session interface {
	Get() string
	Clear() error
}

type Database interface {
	Do(ctx context.Context, method, path string, query url.Values, in, out any) error
	Download(ctx context.Context, path string, query url.Values) ([]byte, error)
	Upload(ctx context.Context, path, field, filename string, content io.Reader, out any) error
	Public(ctx context.Context, method, path string, in, out any) error
}

type Backend struct {
	baseURL        string
	client         clients.HTTPClientI
	session        Session
	onUnauthorized func()
}

type Option func(*Backend)

// WithUnauthorizedHook registers fn to run after a 401 cleared the session.
func WithUnauthorizedHook(fn func()) Option {
	return func(b *Backend) {
		b.onUnauthorized = fn
	}
}

func New(baseURL string, client clients.HTTPClientI, session Session, opts ...Option) *Backend {
	b := &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		session: session,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Do sends an authenticated JSON request; out may be nil.
func (b *Backend) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	req, err := b.newJSONRequest(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	b.authorize(req)
	return b.exchange(req, out)
}

// Public sends a JSON request without the credential (login, registration).
func (b *Backend) Public(ctx context.Context, method, path string, in, out any) error {
	req, err := b.newJSONRequest(ctx, method, path, nil, in)
	if err != nil {
		return err
	}
	return b.exchange(req, out)
}

// Download returns the raw body of an authenticated GET, e.g. a PDF.
func (b *Backend) Download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url(path, query), http.NoBody)
	if err != nil {
		return nil, err
	}
	b.authorize(req)

	status, body, _, err := b.client.Send(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if err := b.checkStatus(req, status, body); err != nil {
		return nil, err
	}
	return body, nil
}

// Upload posts content as a multipart form file.
func (b *Backend) Upload(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("can't read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	b.authorize(req)
	return b.exchange(req, out)
}

func (b *Backend) newJSONRequest(ctx context.Context, method, path string, query url.Values, in any) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("can't encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.url(path, query), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (b *Backend) authorize(req *http.Request) {
	if token := b.session.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (b *Backend) exchange(req *http.Request, out any) error {
	status, body, _, err := b.client.Send(req)
	if err != nil {
		zap.L().Error("backend call failed", zap.String("path", req.URL.Path), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if err := b.checkStatus(req, status, body); err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		zap.L().Error("can't decode backend response", zap.String("path", req.URL.Path), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}

func (b *Backend) checkStatus(req *http.Request, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		b.expire()
		return ErrUnauthorized
	case status >= 200 && status < 300:
		return nil
	default:
		detail := decodeDetail(body)
		zap.L().Info("backend rejected request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", status),
			zap.String("detail", detail),
		)
		return &APIError{Status: status, Detail: detail}
	}
}

func (b *Backend) expire() {
	if err := b.session.Clear(); err != nil {
		zap.L().Error("can't clear session", zap.Error(err))
	}
	if b.onUnauthorized != nil {
		b.onUnauthorized()
	}
}

func (b *Backend) url(path string, query url.Values) string {
	u := b.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
