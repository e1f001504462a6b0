package gsl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://gsl-apps-technical-test.dignp.com"

// Client talks to the GSL listings API. It exposes exactly two operations:
// the listings page and a single listing by id. Failures are classified as
// *TransportError, *HTTPError or *EmptyBodyError; nothing is ever coerced
// to an empty value.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	limiter *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRequestsPerSecond caps the outgoing request rate.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

func NewClient(opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	// A manual reload is the only retry in this system. CheckRetry must not
	// swallow non-2xx responses either; status handling lives in get.
	rc.RetryMax = 0
	rc.CheckRetry = func(context.Context, *http.Response, error) (bool, error) { return false, nil }
	rc.HTTPClient.Timeout = 10 * time.Second

	c := &Client{
		baseURL: defaultBaseURL,
		http:    rc,
		limiter: rate.NewLimiter(rate.Limit(5), 2), // protect upstream quota
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchListings issues GET /listings.json and returns the wire envelope.
func (c *Client) FetchListings(ctx context.Context) (*ListingPage, error) {
	body, err := c.get(ctx, c.baseURL+"/listings.json")
	if err != nil {
		return nil, err
	}
	var page ListingPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &EmptyBodyError{Reason: err.Error()}
	}
	return &page, nil
}

// FetchListing issues GET /listings/{id}.json and returns one wire record.
func (c *Client) FetchListing(ctx context.Context, id int64) (*Listing, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/listings/%d.json", c.baseURL, id))
	if err != nil {
		return nil, err
	}
	var listing Listing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, &EmptyBodyError{Reason: err.Error()}
	}
	return &listing, nil
}

// get performs one GET and applies the transport / HTTP status / empty body
// classification.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := readAllLimit(resp.Body, 4<<20) // 4MB guard
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &EmptyBodyError{}
	}
	return trimmed, nil
}

func readAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
