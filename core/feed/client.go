package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"time"

	"nursery-monitor/core/reconcile"
)

// Client defines the interface for fetching raw inventory rows from the feed.
type Client interface {
	// FetchRecords retrieves all rows of the named sheet.
	FetchRecords(ctx context.Context, sheet string) ([]reconcile.RawRecord, error)
}

type httpClient struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a feed client for the configured endpoint.
func NewClient(cfg Config) (Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("feed endpoint is not configured")
	}
	if _, err := url.Parse(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid feed endpoint: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts so a hung upstream cannot stall
	// the reconciliation cycle.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		endpoint: cfg.Endpoint,
		client: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}, nil
}

// FetchRecords performs one GET against the feed and decodes the payload into
// raw rows. Failures are returned as-is; the caller decides how to degrade.
func (h *httpClient) FetchRecords(ctx context.Context, sheet string) ([]reconcile.RawRecord, error) {
	u, err := url.Parse(h.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid feed endpoint: %w", err)
	}
	q := u.Query()
	if sheet != "" {
		q.Set("sheet", sheet)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	return decodePayload(body, sheet)
}

// decodePayload accepts the two envelope shapes the feed is known to emit:
// a bare JSON array of rows, or an object keyed by sheet name. For the object
// form the requested sheet's key is preferred, then "data", then the first
// array-valued field in key order.
func decodePayload(body []byte, sheet string) ([]reconcile.RawRecord, error) {
	var direct []json.RawMessage
	if err := json.Unmarshal(body, &direct); err == nil {
		return decodeRows(direct)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed feed payload: %w", err)
	}

	candidates := make([]string, 0, len(envelope)+2)
	if sheet != "" {
		candidates = append(candidates, sheet)
	}
	candidates = append(candidates, "data")

	keys := make([]string, 0, len(envelope))
	for k := range envelope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	candidates = append(candidates, keys...)

	for _, key := range candidates {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err != nil {
			continue
		}
		return decodeRows(rows)
	}

	return nil, fmt.Errorf("malformed feed payload: no row array found")
}

// decodeRows converts each element into a RawRecord, skipping entries that
// are not objects. Bad individual rows must not fail the whole payload.
func decodeRows(rows []json.RawMessage) ([]reconcile.RawRecord, error) {
	out := make([]reconcile.RawRecord, 0, len(rows))
	for _, raw := range rows {
		var rec reconcile.RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
