package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/config"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/ougirez/perdash/internal/pkg/metrics"
)

const maxErrorBody = 512

type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code error: %d %s; url-%s; %s", e.Code, http.StatusText(e.Code), e.URL, e.Body)
}

type page struct {
	Count   int                `json:"count"`
	Next    *string            `json:"next"`
	Results *[]json.RawMessage `json:"results"`
}

// Client reads paginated collections from the IFRC GO API.
type Client struct {
	httpClient    *http.Client
	baseURL       *url.URL
	token         string
	userAgent     string
	maxRetries    uint64
	retryInterval time.Duration
	metrics       *metrics.Metrics
}

func NewClient(cfg config.APIConfig, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse, base_url-%s: %w", cfg.BaseURL, err)
	}
	if m == nil {
		m = metrics.New()
	}

	return &Client{
		httpClient:    &http.Client{Timeout: cfg.Timeout, Transport: http.DefaultTransport.(*http.Transport).Clone()},
		baseURL:       base,
		token:         cfg.Token,
		userAgent:     cfg.UserAgent,
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
		metrics:       m,
	}, nil
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// FetchAll follows "next" links from the dataset endpoint and returns every
// result. A page without a results list ends the walk.
func (c *Client) FetchAll(ctx context.Context, ds Dataset) ([]json.RawMessage, error) {
	ref, err := url.Parse(ds.Path)
	if err != nil {
		return nil, fmt.Errorf("url.Parse, path-%s: %w", ds.Path, err)
	}
	nextURL := c.baseURL.ResolveReference(ref).String()

	logger.Infof(ctx, "starting data fetch from: %s", nextURL)

	results := make([]json.RawMessage, 0)
	for nextURL != "" {
		p, err := c.getPage(ctx, ds, nextURL)
		if err != nil {
			return nil, err
		}
		c.metrics.FetchPages.WithLabelValues(ds.Key).Inc()

		if p.Results == nil {
			logger.Warnf(ctx, "no results in response from %s", nextURL)
			break
		}
		if len(results) == 0 {
			logger.Debugf(ctx, "total records to fetch for %s: %d", ds.Key, p.Count)
		}

		results = append(results, *p.Results...)
		logger.Debugf(ctx, "fetched %d of %d records for %s", len(results), p.Count, ds.Key)

		nextURL = ""
		if p.Next != nil {
			nextURL = *p.Next
		}
	}

	return results, nil
}

func (c *Client) getPage(ctx context.Context, ds Dataset, pageURL string) (*page, error) {
	var body []byte
	err := backoff.RetryNotify(
		func() error {
			b, err := c.get(ctx, ds, pageURL)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries),
			ctx,
		),
		func(err error, wait time.Duration) {
			c.metrics.FetchRetries.WithLabelValues(ds.Key).Inc()
			logger.Warnf(ctx, "request to %s failed, retrying in %s: %s", pageURL, wait, err.Error())
		},
	)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", pageURL, err)
	}

	p := new(page)
	if err := codec.Unmarshal(body, p); err != nil {
		return nil, fmt.Errorf("decode page %s: %w", pageURL, err)
	}

	return p, nil
}

// get performs one request. Client errors other than 429 are permanent.
func (c *Client) get(ctx context.Context, ds Dataset, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("http.NewRequestWithContext: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if ds.Auth {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http.Do: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{URL: pageURL, Code: resp.StatusCode, Body: string(snippet)}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return b, nil
}
