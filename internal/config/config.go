// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/dpa-navigator/internal/affordability"
	"github.com/iwvelando/dpa-navigator/internal/cache"
	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for dpa-navigator.
type Configuration struct {
	Policy       affordability.Policy `yaml:"policy" mapstructure:"policy"`
	Combinations CombinationConfig    `yaml:"combinations" mapstructure:"combinations"`
	Ranking      RankingConfig        `yaml:"ranking" mapstructure:"ranking"`
	Catalog      CatalogConfig        `yaml:"catalog,omitempty" mapstructure:"catalog"`
	Cache        cache.Config         `yaml:"cache,omitempty" mapstructure:"cache"`
	Logging      LoggingConfig        `yaml:"logging,omitempty" mapstructure:"logging"`
	Output       OutputConfig         `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// CombinationConfig bounds package generation.
type CombinationConfig struct {
	// MaxSize is the largest number of programs stacked in one package.
	MaxSize int `yaml:"maxSize" mapstructure:"maxSize"`
	// Limit caps the number of candidate packages evaluated.
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// RankingConfig controls how many packages are reported.
type RankingConfig struct {
	Top int `yaml:"top" mapstructure:"top"`
}

// CatalogConfig points at an optional catalog file. An empty path uses the
// built-in Colorado catalog.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty" mapstructure:"path"`
}

// Default returns the configuration used when no file overrides a value.
func Default() *Configuration {
	return &Configuration{
		Policy: affordability.DefaultPolicy(),
		Combinations: CombinationConfig{
			MaxSize: constants.DefaultMaxCombinationSize,
			Limit:   constants.DefaultMaxCombinations,
		},
		Ranking: RankingConfig{Top: constants.DefaultTopPackages},
		Cache:   cache.DefaultConfig(),
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	def := Default()

	v.SetDefault("policy.incomeMultiplier", def.Policy.IncomeMultiplier)
	v.SetDefault("policy.priceCap", def.Policy.PriceCap)
	v.SetDefault("policy.annualRate", def.Policy.AnnualRate)
	v.SetDefault("policy.termMonths", def.Policy.TermMonths)
	v.SetDefault("policy.minDownFraction", def.Policy.MinDownFraction)
	v.SetDefault("policy.annualTaxRate", def.Policy.AnnualTaxRate)
	v.SetDefault("policy.monthlyInsurance", def.Policy.MonthlyInsurance)
	v.SetDefault("combinations.maxSize", def.Combinations.MaxSize)
	v.SetDefault("combinations.limit", def.Combinations.Limit)
	v.SetDefault("ranking.top", def.Ranking.Top)
	v.SetDefault("cache.backend", def.Cache.Backend)
	v.SetDefault("cache.ttl", def.Cache.TTL)
	v.SetDefault("cache.prefix", def.Cache.Prefix)
	v.SetDefault("output.format", def.Output.Format)

	v.SetEnvPrefix("DPA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yml")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return LoadConfigurationFromReader(bytes.NewReader(data))
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
// Values missing from the document keep their defaults.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// LoadCatalog returns the catalog the configuration points at.
func (c *Configuration) LoadCatalog() (*catalog.Catalog, error) {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(c.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", c.Catalog.Path, err)
	}
	return cat, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := c.Policy.Validate(); err != nil {
		warnings = append(warnings, fmt.Sprintf("policy: %v", err))
	}
	if c.Policy.IncomeMultiplier > 6 {
		warnings = append(warnings, fmt.Sprintf("policy: income multiplier %.2f is well above typical lending limits", c.Policy.IncomeMultiplier))
	}

	if c.Combinations.MaxSize < 1 {
		warnings = append(warnings, fmt.Sprintf("combinations: maxSize %d is not positive, using %d", c.Combinations.MaxSize, constants.DefaultMaxCombinationSize))
	} else if c.Combinations.MaxSize > constants.DefaultMaxCombinationSize {
		warnings = append(warnings, fmt.Sprintf("combinations: stacking up to %d programs is beyond the usual pairwise review", c.Combinations.MaxSize))
	}
	if c.Combinations.Limit < 1 {
		warnings = append(warnings, fmt.Sprintf("combinations: limit %d is not positive, using %d", c.Combinations.Limit, constants.DefaultMaxCombinations))
	}

	if c.Ranking.Top < 1 {
		warnings = append(warnings, fmt.Sprintf("ranking: top %d is not positive, using %d", c.Ranking.Top, constants.DefaultTopPackages))
	}

	if path := strings.TrimSpace(c.Catalog.Path); path != "" {
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("catalog: %v", err))
		}
	}

	switch strings.ToLower(c.Cache.Backend) {
	case "", constants.CacheBackendNone, constants.CacheBackendMemory:
	case constants.CacheBackendRedis:
		if c.Cache.Redis.Address == "" {
			warnings = append(warnings, "cache: redis backend selected without an address")
		}
	default:
		warnings = append(warnings, fmt.Sprintf("cache: unknown backend %q", c.Cache.Backend))
	}
	if c.Cache.TTL < 0 {
		warnings = append(warnings, fmt.Sprintf("cache: negative ttl %s", c.Cache.TTL))
	} else if c.Cache.TTL > 24*time.Hour {
		warnings = append(warnings, fmt.Sprintf("cache: ttl %s outlives a typical buyer session", c.Cache.TTL))
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("output: %v", err))
		}
	}

	return warnings
}
