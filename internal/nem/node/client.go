// Package node talks to NIS upstream nodes over HTTP and the STOMP websocket feed.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
)

const maxErrorBody = 1 << 10

// Client is a NIS HTTP API client. Endpoints are passed per call so one client serves every provider.
type Client struct {
	http    *http.Client
	metrics Metrics
}

// NewClient constructs a Client.
func NewClient(httpClient *http.Client, metrics Metrics) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, metrics: metrics}
}

type heightResponse struct {
	Height int64 `json:"height"`
}

// Height returns the chain height reported by endpoint.
func (c *Client) Height(ctx context.Context, endpoint string) (height int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("height", err, started)
	}()

	var resp heightResponse
	found, err := c.do(ctx, http.MethodGet, endpoint, "chain/height", nil, &resp)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, syncerr.Transient("height", fmt.Errorf("%s: chain height not found", endpoint))
	}
	return resp.Height, nil
}

// BlockAt returns the block at height, clamped to 1. A nil block means the node does not have it yet.
func (c *Client) BlockAt(ctx context.Context, endpoint string, height int64) (block *model.RawBlock, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_at", err, started)
	}()

	if height < 1 {
		height = 1
	}
	var raw model.RawBlock
	found, err := c.do(ctx, http.MethodPost, endpoint, "block/at/public", heightResponse{Height: height}, &raw)
	if err != nil {
		return nil, err
	}
	if !found || raw.Height == 0 {
		return nil, nil
	}
	return &raw, nil
}

// do performs one JSON request. It reports found=false on 404 responses.
func (c *Client) do(ctx context.Context, method, endpoint, path string, body, out any) (bool, error) {
	op := method + " " + path
	target, err := url.JoinPath(endpoint, path)
	if err != nil {
		return false, syncerr.Unreachable(op, fmt.Errorf("build url: %w", err))
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return false, fmt.Errorf("%s: new request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, classify(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, syncerr.Transient(op, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, syncerr.Transient(op, fmt.Errorf("decode response: %w", err))
	}
	return true, nil
}

// classify separates connection-level failures from timeouts and other transport errors.
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return syncerr.Transient(op, err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && !dnsErr.IsTimeout {
		return syncerr.Unreachable(op, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" && !opErr.Timeout() {
		return syncerr.Unreachable(op, err)
	}
	return syncerr.Transient(op, err)
}
