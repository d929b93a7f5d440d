package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/akorchak/patentgrab/internal/cache"
	"github.com/akorchak/patentgrab/internal/model"
	"github.com/akorchak/patentgrab/internal/util"
)

// Fetcher retrieves patent pages. Transport concerns - headers, timeout,
// retries, proxies, the robots gate and the page cache - all live here;
// callers only see fetch(url) -> HTML or failure.
type Fetcher struct {
	client   *resty.Client
	robots   *util.RobotsChecker
	cache    cache.Cache
	maxBytes int64
}

// FetchResult is one successfully retrieved page.
type FetchResult struct {
	HTML       string
	StatusCode int
	FromCache  bool
}

// NewFetcher builds a fetcher from configuration. pageCache may be nil to
// disable caching; the robots gate follows cfg.Robots.Respect.
func NewFetcher(cfg *model.Config, pageCache cache.Cache) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(cfg.HTTP.Timeout).
		SetHeader("User-Agent", cfg.HTTP.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(3)).
		SetRetryCount(cfg.HTTP.RetryCount).
		SetRetryWaitTime(cfg.HTTP.RetryWait).
		SetRetryMaxWaitTime(8 * cfg.HTTP.RetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return isRetryableStatus(r.StatusCode())
		})

	var robots *util.RobotsChecker
	if cfg.Robots.Respect {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Fetcher{
		client:   client,
		robots:   robots,
		cache:    pageCache,
		maxBytes: cfg.HTTP.MaxBodyBytes,
	}
}

// Fetch retrieves one page. Any non-200 status and any transport error are
// equivalent failures; the caller turns them into per-record errors.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.cache != nil {
		if body, found := f.cache.Get(cache.Key(rawURL)); found {
			return &FetchResult{HTML: string(body), StatusCode: http.StatusOK, FromCache: true}, nil
		}
	}

	if f.robots != nil {
		if allowed, err := f.robots.CanFetch(ctx, rawURL); err == nil && !allowed {
			return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
	}

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode(), resp.Status())
	}

	body := resp.Body()
	if f.maxBytes > 0 && int64(len(body)) > f.maxBytes {
		body = body[:f.maxBytes]
	}

	if f.cache != nil {
		_ = f.cache.Set(cache.Key(rawURL), body, 0)
	}

	return &FetchResult{HTML: string(body), StatusCode: resp.StatusCode()}, nil
}

// isRetryableStatus: rate limiting and server-side failures are worth a
// retry, client errors are not.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
