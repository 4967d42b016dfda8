package username

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/michemobile/marketplace-api/internal/httperr"
)

// Reserved names can never be claimed regardless of what the store holds.
var reserved = map[string]struct{}{
	"taken":   {},
	"admin":   {},
	"beauty":  {},
	"maslynn": {},
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

type Repository interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// Checker answers availability questions for profile usernames. Verdicts
// are cached in redis for a short window; on cache failure the store is
// consulted directly.
type Checker struct {
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewChecker(repo Repository, cache *redis.Client) *Checker {
	return &Checker{
		repo:     repo,
		cache:    cache,
		cacheTTL: 30 * time.Second,
	}
}

// Normalize lowercases and trims a candidate username.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validate checks the username format without touching the store.
func Validate(raw string) error {
	name := Normalize(raw)
	if name == "" {
		return httperr.ErrBusiness("username_required")
	}
	if !usernamePattern.MatchString(name) {
		return httperr.ErrBusiness("username_invalid")
	}
	return nil
}

// Available reports whether the username can be claimed. Only the
// denylist and the store decide here; format rules apply when the name
// is actually claimed, not when it is probed.
func (c *Checker) Available(ctx context.Context, raw string) (bool, error) {
	name := Normalize(raw)
	if name == "" {
		return false, httperr.ErrBusiness("username_required")
	}

	if _, ok := reserved[name]; ok {
		return false, nil
	}

	cacheKey := "username:taken:" + name
	if c.cache != nil {
		if val, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			return val != "1", nil
		}
	}

	taken, err := c.repo.UsernameTaken(ctx, name)
	if err != nil {
		return false, err
	}

	if c.cache != nil {
		val := "0"
		if taken {
			val = "1"
		}
		c.cache.Set(ctx, cacheKey, val, c.cacheTTL)
	}

	return !taken, nil
}
