// Package countries verifies country codes against the restcountries.com
// registry, caching verdicts in Redis.
package countries

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"supplyhub/internal/catalog/ports/services"
	"supplyhub/pkg/logger"
)

// DefaultBaseURL is the public country registry endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// Log and error messages.
const (
	msgCacheHit        = "country code verdict served from cache"
	msgRegistryQueried = "country registry queried"

	errBuildingRequest  = "building country registry request"
	errQueryingRegistry = "querying country registry"
	errCachingVerdict   = "failed to cache country verdict"
)

const (
	cacheKeyPrefix = "country:"
	verdictKnown   = "1"
	verdictUnknown = "0"
)

// Client implements the CountryVerifier port.
type Client struct {
	httpClient *http.Client
	cache      *redis.Client
	baseURL    string
	cacheTTL   time.Duration
}

// NewClient creates a country verification client. The cache is optional;
// with a nil client every lookup goes to the registry.
func NewClient(httpClient *http.Client, cache *redis.Client, baseURL string, cacheTTL time.Duration) services.CountryVerifier {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		cache:      cache,
		baseURL:    baseURL,
		cacheTTL:   cacheTTL,
	}
}

// VerifyCode reports whether the registry knows the country code. Both
// positive and negative verdicts are cached.
func (c *Client) VerifyCode(ctx context.Context, code string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("service", "countries"), zap.String("code", code))

	if code == "" {
		return false, nil
	}

	key := cacheKeyPrefix + code
	if c.cache != nil {
		verdict, err := c.cache.Get(ctx, key).Result()
		if err == nil {
			log.Debug(ctx, msgCacheHit, zap.String("verdict", verdict))
			return verdict == verdictKnown, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Warn(ctx, "country cache unavailable", zap.Error(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/alpha/%s", c.baseURL, code), nil)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errBuildingRequest, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errQueryingRegistry, err)
	}
	defer resp.Body.Close()

	known := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	log.Debug(ctx, msgRegistryQueried, zap.Int("status", resp.StatusCode), zap.Bool("known", known))

	if c.cache != nil {
		verdict := verdictUnknown
		if known {
			verdict = verdictKnown
		}
		if err := c.cache.Set(ctx, key, verdict, c.cacheTTL).Err(); err != nil {
			log.Warn(ctx, errCachingVerdict, zap.Error(err))
		}
	}

	return known, nil
}
