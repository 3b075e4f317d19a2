package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the number of entries requested per call.
	DefaultPageSize = 100

	// MaxRetries is the number of times a rate-limited request is retried.
	MaxRetries = 3

	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Config configures a Client.
type Config struct {
	SpaceID     string
	Environment string
	AccessToken string
	ContentType string
	Locale      string

	// Host is the API host. A value with a scheme is used as the base URL as is.
	Host string

	// PageSize overrides DefaultPageSize.
	PageSize int

	// RequestsPerSecond overrides ProactiveRate. Negative disables pacing.
	RequestsPerSecond float64
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.ContentfulSettings) Config {
	return Config{
		SpaceID:     s.SpaceID,
		Environment: s.Environment,
		AccessToken: s.AccessToken,
		ContentType: s.ContentType,
		Locale:      s.Locale,
		Host:        s.Host,
	}
}

// Client calls the Content Delivery API.
type Client struct {
	http        *http.Client
	baseURL     string
	cfg         Config
	rateLimiter *RateLimiter
}

// NewClient creates a client. The access token is attached to every
// request as a bearer token.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SpaceID == "" || cfg.AccessToken == "" {
		return nil, fmt.Errorf("%w: contentful space id and access token are required", domain.ErrInvalidInput)
	}
	if cfg.Environment == "" {
		cfg.Environment = "master"
	}
	if cfg.ContentType == "" {
		cfg.ContentType = "article"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = ProactiveRate
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.AccessToken},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		http:        tc,
		baseURL:     baseURL(cfg.Host),
		cfg:         cfg,
		rateLimiter: NewRateLimiter(rps),
	}, nil
}

func baseURL(host string) string {
	if host == "" {
		host = "cdn.contentful.com"
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimSuffix(host, "/")
	}
	return "https://" + host
}

// entriesURL builds the URL for one page of entries.
func (c *Client) entriesURL(skip int) string {
	q := url.Values{}
	q.Set("content_type", c.cfg.ContentType)
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(c.cfg.PageSize))
	q.Set("include", "1")
	if c.cfg.Locale != "" {
		q.Set("locale", c.cfg.Locale)
	}
	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, url.PathEscape(c.cfg.SpaceID), url.PathEscape(c.cfg.Environment), q.Encode())
}

// Entries fetches one page, retrying after rate-limit responses.
func (c *Client) Entries(ctx context.Context, skip int) (*entryCollection, error) {
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		page, err := c.entries(ctx, skip)
		if err == nil {
			return page, nil
		}
		if !IsRateLimited(err) {
			return nil, err
		}
		lastErr = err
		if attempt == MaxRetries {
			break
		}
		logger.Debug("contentful: rate limited, waiting until %s", c.rateLimiter.ResetTime().Format(time.RFC3339))
		if err := c.rateLimiter.WaitForReset(ctx); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrRateLimited, lastErr)
}

func (c *Client) entries(ctx context.Context, skip int) (*entryCollection, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.entriesURL(skip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request entries: %w", err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp, u)
	}

	var page entryCollection
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return &page, nil
}

// readAPIError turns a non-2xx response into an APIError.
// A 401 additionally matches domain.ErrAuthInvalid.
func readAPIError(resp *http.Response, u string) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		URL:        u,
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		apiErr.ErrorID = eb.Sys.ID
		if eb.Message != "" {
			apiErr.Message = eb.Message
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Join(domain.ErrAuthInvalid, apiErr)
	}
	return apiErr
}
