package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"guestadmin/internal/domain"
)

// Client talks to the guest-management REST backend. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type ctxKey int

const tokenKey ctxKey = iota

// ContextWithToken attaches the backend API token to the request
// context. Every authenticated call reads it from there.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// sendJSON issues a mutating request with a JSON body.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return domain.InternalError{Msg: "encode request", Err: err}
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

// sendMultipart issues a mutating request encoded as multipart form
// data. Repeated field values are written once per entry; a non-nil
// file is attached under fileField.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields url.Values, fileField, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			if err := w.WriteField(name, v); err != nil {
				return domain.InternalError{Msg: "encode form", Err: err}
			}
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			return domain.InternalError{Msg: "encode form", Err: err}
		}
		if _, err := io.Copy(part, file); err != nil {
			return domain.InternalError{Msg: "encode form", Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return domain.InternalError{Msg: "encode form", Err: err}
	}
	return c.do(ctx, method, path, nil, &buf, w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return domain.InternalError{Msg: "build request", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return domain.InternalError{Msg: "backend unreachable", Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.InternalError{Msg: "read response", Err: err}
	}

	if res.StatusCode >= 400 {
		return mapError(res.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.InternalError{Msg: "decode response", Err: err}
	}
	return nil
}

// mapError converts a backend error response into the domain taxonomy.
// DRF validation errors arrive as {"field": ["msg", ...]} maps and are
// surfaced as per-field messages.
func mapError(status int, raw []byte) error {
	msg := extractMessage(raw)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.UnauthorizedError{Msg: msg}
	case status == http.StatusNotFound:
		return domain.NotFoundError{Resource: msg}
	case status == http.StatusConflict:
		return domain.ConflictError{Msg: msg}
	case status == http.StatusBadRequest:
		if fields := extractFieldErrors(raw); len(fields) > 0 {
			return fields
		}
		if msg == "" {
			msg = "invalid request"
		}
		return domain.ValidationError{Msg: msg}
	default:
		if msg == "" {
			msg = fmt.Sprintf("backend returned status %d", status)
		}
		return domain.InternalError{Msg: msg}
	}
}

func extractMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	switch {
	case envelope.Message != "":
		return envelope.Message
	case envelope.Error != "":
		return envelope.Error
	default:
		return envelope.Detail
	}
}

func extractFieldErrors(raw []byte) domain.FieldErrors {
	var byField map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byField); err != nil {
		return nil
	}
	fields := domain.FieldErrors{}
	for field, value := range byField {
		switch field {
		case "message", "error", "detail":
			continue
		}
		var list []string
		if err := json.Unmarshal(value, &list); err == nil && len(list) > 0 {
			fields.Set(field, list[0])
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil && single != "" {
			fields.Set(field, single)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
