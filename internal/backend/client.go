package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant-backoffice/internal/report"
)

var (
	ErrMissingOutlet = errors.New("outlet id is required")
	ErrNotFound      = errors.New("not found")
)

// StatusError is a non-2xx answer from the POS backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: backend returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: backend returned %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "restaurant-backoffice",
	}
}

type reportsEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Orders []report.RawOrder `json:"orders"`
	} `json:"data"`
}

// FetchOrders loads every raw order the backend reports. Orders are decoded
// with json.Number so large amounts keep their precision.
func (c *Client) FetchOrders(ctx context.Context) ([]report.RawOrder, error) {
	var payload reportsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/reports", nil, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	if !payload.Success {
		msg := payload.Message
		if msg == "" {
			msg = "backend reported failure"
		}
		return nil, fmt.Errorf("fetch orders: %s", msg)
	}
	if payload.Data.Orders == nil {
		return []report.RawOrder{}, nil
	}
	return payload.Data.Orders, nil
}

// FetchPaymentModes lists payment modes for an outlet. An empty outlet id asks
// the backend for its default list.
func (c *Client) FetchPaymentModes(ctx context.Context, outletID string) ([]report.PaymentMode, error) {
	query := url.Values{}
	query.Set("outletid", strings.TrimSpace(outletID))

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/payment-modes/by-outlet", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch payment modes: %w", err)
	}

	modes := []report.PaymentMode{}
	if err := json.Unmarshal(raw, &modes); err == nil {
		return modes, nil
	}
	// Some deployments wrap the list in the usual {success, data} envelope.
	var wrapped struct {
		Data []report.PaymentMode `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("fetch payment modes: decode: %w", err)
	}
	if wrapped.Data == nil {
		return []report.PaymentMode{}, nil
	}
	return wrapped.Data, nil
}

// GetSettings reads one settings record. A 404 is reported as ErrNotFound.
func (c *Client) GetSettings(ctx context.Context, section, id string) (map[string]any, error) {
	path, err := settingsPath(section, id)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("get %s: %w", section, err)
	}
	return unwrapRecord(raw), nil
}

// PutSettings writes a snake_case payload back and returns the backend's
// acknowledgement, {success, message, changes}. It is not the stored record.
func (c *Client) PutSettings(ctx context.Context, section, id string, payload map[string]any) (map[string]any, error) {
	path, err := settingsPath(section, id)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", section, err)
	}
	var raw map[string]any
	if err := c.do(ctx, http.MethodPut, path, nil, body, &raw); err != nil {
		return nil, fmt.Errorf("put %s: %w", section, err)
	}
	if ok, present := raw["success"].(bool); present && !ok {
		msg, _ := raw["message"].(string)
		return nil, &StatusError{Method: http.MethodPut, Path: path, StatusCode: http.StatusOK, Message: msg}
	}
	return raw, nil
}

func settingsPath(section, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingOutlet
	}
	return "/api/settings/" + url.PathEscape(section) + "/" + url.PathEscape(id), nil
}

// unwrapRecord accepts both a bare record and {success, data: record}.
func unwrapRecord(raw map[string]any) map[string]any {
	if raw == nil {
		return map[string]any{}
	}
	if data, ok := raw["data"].(map[string]any); ok {
		if _, hasSuccess := raw["success"]; hasSuccess {
			return data
		}
	}
	return raw
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Message:    errorMessage(res.Body),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
