package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/dpa-navigator/internal/affordability"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Example config file",
			configPath: filepath.Join("..", "..", "test", "test_config.yaml"),
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Policy != affordability.DefaultPolicy() {
		t.Errorf("expected default policy, got %+v", conf.Policy)
	}
	if conf.Combinations.MaxSize != constants.DefaultMaxCombinationSize {
		t.Errorf("expected default max size %d, got %d", constants.DefaultMaxCombinationSize, conf.Combinations.MaxSize)
	}
	if conf.Combinations.Limit != constants.DefaultMaxCombinations {
		t.Errorf("expected default limit %d, got %d", constants.DefaultMaxCombinations, conf.Combinations.Limit)
	}
	if conf.Ranking.Top != constants.DefaultTopPackages {
		t.Errorf("expected default top %d, got %d", constants.DefaultTopPackages, conf.Ranking.Top)
	}
	if conf.Cache.Backend != constants.CacheBackendNone {
		t.Errorf("expected cache disabled by default, got %q", conf.Cache.Backend)
	}
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("expected pretty output by default, got %q", conf.Output.Format)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", conf.Logging.Level)
	}
}

func TestLoadConfigurationFromReaderOverrides(t *testing.T) {
	yamlDoc := `
policy:
  incomeMultiplier: 4
  priceCap: 500000
  annualRate: 0.06
  termMonths: 180
combinations:
  maxSize: 3
  limit: 50
ranking:
  top: 2
cache:
  backend: memory
  ttl: 90s
  maxEntries: 100
output:
  format: csv
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Policy.IncomeMultiplier != 4 {
		t.Errorf("expected income multiplier 4, got %v", conf.Policy.IncomeMultiplier)
	}
	if conf.Policy.PriceCap != 500000 {
		t.Errorf("expected price cap 500000, got %v", conf.Policy.PriceCap)
	}
	if conf.Policy.TermMonths != 180 {
		t.Errorf("expected term 180, got %d", conf.Policy.TermMonths)
	}
	// Unset policy values keep their defaults.
	if conf.Policy.MinDownFraction != constants.DefaultMinDownFraction {
		t.Errorf("expected default min down fraction, got %v", conf.Policy.MinDownFraction)
	}
	if conf.Combinations.MaxSize != 3 || conf.Combinations.Limit != 50 {
		t.Errorf("unexpected combinations %+v", conf.Combinations)
	}
	if conf.Ranking.Top != 2 {
		t.Errorf("expected top 2, got %d", conf.Ranking.Top)
	}
	if conf.Cache.Backend != constants.CacheBackendMemory {
		t.Errorf("expected memory cache, got %q", conf.Cache.Backend)
	}
	if conf.Cache.TTL != 90*time.Second {
		t.Errorf("expected ttl 90s, got %s", conf.Cache.TTL)
	}
	if conf.Cache.MaxEntries != 100 {
		t.Errorf("expected 100 max entries, got %d", conf.Cache.MaxEntries)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("expected csv output, got %q", conf.Output.Format)
	}
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("policy: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadCatalog(t *testing.T) {
	conf := Default()
	cat, err := conf.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if cat.Len() != 14 {
		t.Errorf("expected built-in catalog of 14 programs, got %d", cat.Len())
	}

	conf.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := conf.LoadCatalog(); err == nil {
		t.Error("expected error for missing catalog file")
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	contents := []byte(`programs:
  - id: local-grant
    name: Local Grant
    counties: [Denver]
    maxIncome: 90000
    category: local
    isGrant: true
    assistance:
      kind: flat
      amount: 5000
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	conf.Catalog.Path = path
	cat, err = conf.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("expected 1 program, got %d", cat.Len())
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Configuration)
		contains string
	}{
		{
			name:     "Defaults are clean",
			modify:   func(*Configuration) {},
			contains: "",
		},
		{
			name:     "Invalid price cap",
			modify:   func(c *Configuration) { c.Policy.PriceCap = 0 },
			contains: "priceCap",
		},
		{
			name:     "Aggressive multiplier",
			modify:   func(c *Configuration) { c.Policy.IncomeMultiplier = 8 },
			contains: "income multiplier",
		},
		{
			name:     "Triple stacking",
			modify:   func(c *Configuration) { c.Combinations.MaxSize = 3 },
			contains: "stacking up to 3",
		},
		{
			name:     "Non-positive limit",
			modify:   func(c *Configuration) { c.Combinations.Limit = 0 },
			contains: "limit 0",
		},
		{
			name:     "Non-positive top",
			modify:   func(c *Configuration) { c.Ranking.Top = -1 },
			contains: "ranking",
		},
		{
			name:     "Redis without address",
			modify:   func(c *Configuration) { c.Cache.Backend = constants.CacheBackendRedis },
			contains: "without an address",
		},
		{
			name:     "Unknown cache backend",
			modify:   func(c *Configuration) { c.Cache.Backend = "memcached" },
			contains: "unknown backend",
		},
		{
			name:     "Long ttl",
			modify:   func(c *Configuration) { c.Cache.TTL = 48 * time.Hour },
			contains: "outlives",
		},
		{
			name:     "Bad output format",
			modify:   func(c *Configuration) { c.Output.Format = "xml" },
			contains: "output",
		},
		{
			name:     "Missing catalog file",
			modify:   func(c *Configuration) { c.Catalog.Path = "/nonexistent/catalog.yaml" },
			contains: "catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Default()
			tt.modify(conf)
			warnings := conf.ValidateConfiguration()

			if tt.contains == "" {
				if len(warnings) != 0 {
					t.Errorf("expected no warnings, got %v", warnings)
				}
				return
			}

			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.contains) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}
