// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package frankfurter fetches exchange rates from frankfurter.dev. The API is
// free and needs no key.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.frankfurter.dev/v1"

// StatusError is returned for non 200 responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Retryable is true for throttling and server side failures.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

type Client interface {
	// GetLatest returns units of each currency per 1 base currency.
	GetLatest(ctx context.Context, baseCurrency string) (map[string]float64, error)
}

type ClientOption func(*client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func NewClient(options ...ClientOption) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *client) GetLatest(ctx context.Context, baseCurrency string) (map[string]float64, error) {
	baseCurrency = strings.ToUpper(baseCurrency)
	reqURL := fmt.Sprintf("%s/latest?base=%s", c.baseURL, baseCurrency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out latestResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	rates := map[string]float64{baseCurrency: 1}
	for currency, rate := range out.Rates {
		rates[strings.ToUpper(currency)] = rate
	}
	return rates, nil
}
