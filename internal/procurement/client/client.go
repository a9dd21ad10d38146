// Package client provides the HTTP client for the SECOP dataset API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"secop_portal_backend/internal/procurement/soql"
	"secop_portal_backend/internal/procurement/transport"
	"secop_portal_backend/platform/logger"
)

// StatusError is a typed failure carrying the upstream HTTP status.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dataset api: status %d", e.Status)
}

// Rejected reports whether the upstream refused the query itself, which is
// what the order-omission fallback keys on.
func (e *StatusError) Rejected() bool {
	return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
}

// Client is the HTTP client for the Socrata dataset endpoint.
type Client struct {
	httpClient *http.Client
	datasetURL string
	appToken   string
	log        *logger.Logger
}

// New creates a new dataset client. Per-request deadlines come from the
// caller's context, so the transport itself carries no timeout.
func New(datasetURL, appToken string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		datasetURL: datasetURL,
		appToken:   appToken,
		log:        log,
	}
}

// Fetch executes one compiled query against the dataset endpoint. It never
// retries; the fallback protocol lives in the service layer.
func (c *Client) Fetch(ctx context.Context, q soql.Query) ([]transport.Record, error) {
	params := url.Values{}
	if q.HasWhere {
		params.Set("$where", q.Where)
	}
	if q.Order != "" {
		params.Set("$order", q.Order)
	}
	params.Set("$limit", strconv.Itoa(q.Limit))
	params.Set("$offset", strconv.Itoa(q.Offset))

	reqURL := c.datasetURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("fetch", 0, err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError("fetch", resp.StatusCode, nil)
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var records []transport.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		c.log.UpstreamError("decode", resp.StatusCode, err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return records, nil
}
