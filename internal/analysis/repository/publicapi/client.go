package publicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgLog "minwon-analytics/pkg/log"
)

// Config holds the transport settings shared by every source.
type Config struct {
	BaseURL    string
	ServiceKey string
	Timeout    time.Duration
	HTTPClient *http.Client

	// MaxResponseBytes defaults to DefaultMaxResponseBytes.
	MaxResponseBytes int64
}

// Client is the authenticated GET transport for the complaint Open API.
// It is safe for concurrent use; its configuration is read-only.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	maxBody    int64
	l          pkgLog.Logger
}

// NewClient creates a new transport client. A nil HTTPClient gets a
// client with Timeout, or DefaultTimeout when unset.
func NewClient(cfg Config, l pkgLog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: cfg.HTTPClient,
		maxBody:    cfg.MaxResponseBytes,
		l:          l,
	}
}

// Get calls path with params plus the service key and the JSON format flag.
//
// A top-level JSON array is returned as is. Otherwise the (optionally
// "response"-wrapped) envelope's header.resultCode is checked and the "body"
// field is returned, or an empty object when there is none.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (any, error) {
	query := url.Values{}
	query.Set("serviceKey", c.serviceKey)
	query.Set("dataType", "json")
	for k, v := range params {
		query[k] = v
	}
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request for %s: %v", ErrTransport, path, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s response: %v", ErrTransport, path, err)
	}
	if int64(len(raw)) > c.maxBody {
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", ErrTransport, path, c.maxBody)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned HTTP %d", ErrTransport, path, resp.StatusCode)
	}

	c.l.Debugf(ctx, "publicapi: GET %s -> %d bytes", path, len(raw))

	var data any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s response: %v", ErrTransport, path, err)
	}

	return unwrapEnvelope(data)
}

// unwrapEnvelope applies the envelope rules to a decoded response.
func unwrapEnvelope(data any) (any, error) {
	switch v := data.(type) {
	case []any:
		// Some sources skip the envelope entirely.
		return v, nil
	case map[string]any:
		envelope := v
		if inner, ok := envelope["response"]; ok {
			innerMap, ok := inner.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected \"response\" type %T", ErrTransport, inner)
			}
			envelope = innerMap
		}

		header, _ := envelope["header"].(map[string]any)
		code := defaultResultCodeStr
		if rc, ok := header["resultCode"]; ok && rc != nil {
			code = scalarString(rc)
		}
		if _, ok := successCodes[code]; !ok {
			msg := defaultResultMessage
			if rm, ok := header["resultMsg"]; ok && rm != nil {
				msg = scalarString(rm)
			}
			return nil, &APIError{Code: code, Message: msg}
		}

		if body, ok := envelope["body"]; ok {
			return body, nil
		}
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected response type %T", ErrTransport, data)
	}
}

// CloseIdleConnections releases pooled connections at shutdown.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
