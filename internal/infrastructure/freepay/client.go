// Package freepay implements the gateway client against the FreePay
// merchant API.
package freepay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/shared/logger"
)

const (
	// HTTP request timeout
	requestTimeout = 30 * time.Second
	// Maximum response body size accepted from the gateway (256KB)
	maxResponseSize = 256 << 10
)

// Client talks to the FreePay merchant API. The API key is sent verbatim
// in the Authorization header on every request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(baseURL, apiKey string, logger logger.Interface) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// Ensure Client implements the gateway contract
var _ gateway.Client = (*Client)(nil)

// GetTransaction fetches the authoritative transaction record.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*gateway.TransactionInfo, error) {
	body, err := c.do(ctx, http.MethodGet, "/"+transactionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", transactionID, err)
	}

	var info gateway.TransactionInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode transaction response: %w", err)
	}

	return &info, nil
}

// Capture collects part or all of an authorized amount.
func (c *Client) Capture(ctx context.Context, transactionID string, amountMinor int64) error {
	payload := map[string]int64{"Amount": amountMinor}
	if _, err := c.do(ctx, http.MethodPost, "/"+transactionID+"/capture", payload); err != nil {
		return fmt.Errorf("failed to capture transaction %s: %w", transactionID, err)
	}
	return nil
}

// Cancel voids an authorization.
func (c *Client) Cancel(ctx context.Context, transactionID string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/"+transactionID, nil); err != nil {
		return fmt.Errorf("failed to cancel transaction %s: %w", transactionID, err)
	}
	return nil
}

// Credit refunds a captured amount back to the cardholder.
func (c *Client) Credit(ctx context.Context, transactionID string, amountMinor int64) error {
	payload := map[string]int64{"Amount": amountMinor}
	if _, err := c.do(ctx, http.MethodPost, "/"+transactionID+"/credit", payload); err != nil {
		return fmt.Errorf("failed to credit transaction %s: %w", transactionID, err)
	}
	return nil
}

// CreatePaymentLink opens a hosted payment window session.
func (c *Client) CreatePaymentLink(ctx context.Context, req gateway.PaymentLinkRequest) (*gateway.PaymentLinkResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/link", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	var link gateway.PaymentLinkResponse
	if err := json.Unmarshal(body, &link); err != nil {
		return nil, fmt.Errorf("failed to decode payment link response: %w", err)
	}
	if link.PaymentWindowLink == "" {
		return nil, fmt.Errorf("gateway returned empty payment window link")
	}

	return &link, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warnw("gateway request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}
