// Package cache memoizes derived recommendations by a hash of the inputs
// that produced them.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iwvelando/dpa-navigator/internal/profile"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"go.uber.org/zap"
)

// Cache stores opaque values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for the backend's lifetime.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// RedisConfig locates the Redis server.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Config selects and tunes a backend.
type Config struct {
	Backend    string        `mapstructure:"backend"`
	TTL        time.Duration `mapstructure:"ttl"`
	Prefix     string        `mapstructure:"prefix"`
	MaxEntries int           `mapstructure:"maxEntries"`
	Redis      RedisConfig   `mapstructure:"redis"`
}

// DefaultConfig disables caching.
func DefaultConfig() Config {
	return Config{
		Backend: constants.CacheBackendNone,
		TTL:     constants.DefaultCacheTTLSeconds * time.Second,
		Prefix:  constants.DefaultCacheKeyPrefix,
	}
}

// New returns the backend named by cfg.Backend.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = constants.DefaultCacheTTLSeconds * time.Second
	}

	switch strings.ToLower(cfg.Backend) {
	case "", constants.CacheBackendNone:
		return Nop{}, nil
	case constants.CacheBackendMemory:
		logger.Debug("using in-memory recommendation cache",
			zap.String("op", "cache.New"),
			zap.Duration("ttl", cfg.TTL),
			zap.Int("maxEntries", cfg.MaxEntries),
		)
		return NewMemory(cfg.TTL, cfg.MaxEntries), nil
	case constants.CacheBackendRedis:
		r, err := NewRedis(ctx, cfg.Redis, cfg.TTL, logger)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// keyFields are the profile inputs a recommendation depends on.
type keyFields struct {
	County           string   `json:"county"`
	Income           int      `json:"income"`
	FirstTimeBuyer   bool     `json:"firstTimeBuyer"`
	Savings          int      `json:"savings"`
	Credit           string   `json:"credit"`
	Occupation       string   `json:"occupation"`
	Veteran          bool     `json:"veteran"`
	SelectedPrograms []string `json:"selectedPrograms"`
}

// Key derives the cache key for p. The fingerprint identifies everything
// else the result depends on, such as the catalog and policy in use.
// Selected program order does not affect the key.
func Key(prefix, fingerprint string, p profile.Profile) string {
	p = p.Normalize()
	selected := append([]string{}, p.SelectedPrograms...)
	sort.Strings(selected)

	fields := keyFields{
		County:           p.County,
		Income:           p.Income,
		FirstTimeBuyer:   p.FirstTimeBuyer,
		Savings:          p.Savings,
		Credit:           string(p.Credit),
		Occupation:       p.Occupation,
		Veteran:          p.Veteran,
		SelectedPrograms: selected,
	}
	// A struct of strings, ints and bools always marshals.
	data, _ := json.Marshal(fields)

	sum := sha256.New()
	sum.Write([]byte(fingerprint))
	sum.Write([]byte{0})
	sum.Write(data)
	return prefix + hex.EncodeToString(sum.Sum(nil))
}

// Fingerprint hashes arbitrary configuration blobs into a short identifier
// suitable for Key.
func Fingerprint(parts ...[]byte) string {
	sum := sha256.New()
	for _, part := range parts {
		sum.Write(part)
		sum.Write([]byte{0})
	}
	return hex.EncodeToString(sum.Sum(nil))[:16]
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error          { return nil }
func (Nop) Close() error                                       { return nil }
