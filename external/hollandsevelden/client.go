// Package hollandsevelden fetches competition data from the
// hollandsevelden.nl API. The payload arrives keyed by competition slug;
// callers get the inner competition object ready for normalization.
package hollandsevelden

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/resilience"
	"github.com/zeeneddie/Sports-League-Management-System/internal/usecase"
)

const (
	defaultBaseURL         = "https://api.hollandsevelden.nl"
	defaultCompetitionPath = "/competities/2025-2026/noord-zaterdag-1f/"
	defaultTimeout         = 15 * time.Second
)

var apiKeyHeaderRegex = regexp.MustCompile(`(?i)x-api-key:\s*\S+`)

var errTransient = crerr.New("hollandsevelden transient failure")

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	APIKey          string
	CompetitionPath string
	Timeout         time.Duration
	MaxRetries      int
	Logger          *logging.Logger
	CircuitBreaker  resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	competitionPath string
	maxRetries      int
	logger          *logging.Logger
	breaker         *resilience.CircuitBreaker
	circuitEnabled  bool
	flight          resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	competitionPath := strings.TrimSpace(cfg.CompetitionPath)
	if competitionPath == "" {
		competitionPath = defaultCompetitionPath
	}
	if !strings.HasPrefix(competitionPath, "/") {
		competitionPath = "/" + competitionPath
	}

	return &Client{
		httpClient:      httpClient,
		baseURL:         baseURL,
		apiKey:          strings.TrimSpace(cfg.APIKey),
		competitionPath: competitionPath,
		maxRetries:      maxInt(cfg.MaxRetries, 0),
		logger:          logger,
		breaker:         resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled:  cfg.CircuitBreaker.Enabled,
	}
}

// FetchCompetitionData returns the raw competition object for the
// configured competition. Concurrent callers share one in-flight request.
func (c *Client) FetchCompetitionData(ctx context.Context) (map[string]any, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "hollandsevelden circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: competition data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + c.competitionPath

	out, err, _ := c.flight.Do(c.competitionPath, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var payload map[string]any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	return unwrapCompetition(payload), nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-api-key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "hollandsevelden request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// unwrapCompetition handles both response forms the provider has used:
// the league object directly, or one object per competition slug. The
// keyed form is unwrapped on the lowest slug for determinism.
func unwrapCompetition(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	for _, key := range []string{"leaguetable", "results", "program", "period1"} {
		if _, ok := payload[key]; ok {
			return payload
		}
	}

	slugs := make([]string, 0, len(payload))
	for slug, value := range payload {
		if _, ok := value.(map[string]any); ok {
			slugs = append(slugs, slug)
		}
	}
	if len(slugs) == 0 {
		return payload
	}
	sort.Strings(slugs)
	return payload[slugs[0]].(map[string]any)
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyHeaderRegex.ReplaceAllString(value, "x-api-key: REDACTED")
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= 500
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > 256 {
		return body[:256] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
