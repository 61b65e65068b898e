// Package navigator runs the full recommendation pipeline for a buyer:
// eligibility, combination generation, affordability, package ranking and
// provider matching. Every stage is a pure function of the profile, so a
// finished Recommendation can be memoized by a hash of its inputs.
package navigator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/dpa-navigator/internal/affordability"
	"github.com/iwvelando/dpa-navigator/internal/cache"
	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/internal/combination"
	"github.com/iwvelando/dpa-navigator/internal/config"
	"github.com/iwvelando/dpa-navigator/internal/credit"
	"github.com/iwvelando/dpa-navigator/internal/directory"
	"github.com/iwvelando/dpa-navigator/internal/eligibility"
	"github.com/iwvelando/dpa-navigator/internal/packages"
	"github.com/iwvelando/dpa-navigator/internal/profile"
	"github.com/iwvelando/dpa-navigator/internal/provider"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"go.uber.org/zap"
)

// Options tunes an Engine. Zero values fall back to the built-in defaults.
type Options struct {
	Policy         affordability.Policy
	MaxComboSize   int
	MaxCombos      int
	TopPackages    int
	Lenders        []directory.Lender
	Realtors       []directory.Realtor
	Cache          cache.Cache
	CacheKeyPrefix string
}

// Engine produces recommendations against one catalog and directory set.
// It holds no per-buyer state and is safe for concurrent use.
type Engine struct {
	logger      *zap.Logger
	catalog     *catalog.Catalog
	policy      affordability.Policy
	generator   combination.Generator
	top         int
	lenders     []directory.Lender
	realtors    []directory.Realtor
	cache       cache.Cache
	prefix      string
	fingerprint string
}

// Recommendation is everything the presentation layer needs for one profile.
type Recommendation struct {
	Profile  profile.Profile      `json:"profile"`
	Complete bool                 `json:"complete"`
	Credit   credit.Assessment    `json:"credit"`
	Baseline affordability.Result `json:"affordability"`

	Eligible          []catalog.Program       `json:"eligiblePrograms"`
	AffordableHousing []catalog.Program       `json:"affordableHousing"`
	Rejections        []eligibility.Rejection `json:"rejections"`
	MaxAssistance     float64                 `json:"maxSingleAssistance"`

	Combinations [][]string `json:"combinations"`
	// Truncated is set when more valid combinations existed than were evaluated.
	Truncated bool               `json:"truncated"`
	Packages  []packages.Package `json:"packages"`

	Lenders     []directory.Lender    `json:"lenders"`
	LenderMatch *provider.LenderMatch `json:"lenderMatch,omitempty"`
	Realtors    []directory.Realtor   `json:"realtors"`
}

// New builds an engine over cat.
func New(logger *zap.Logger, cat *catalog.Catalog, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if opts.Policy == (affordability.Policy{}) {
		opts.Policy = affordability.DefaultPolicy()
	}
	if opts.TopPackages <= 0 {
		opts.TopPackages = constants.DefaultTopPackages
	}
	if opts.Lenders == nil {
		opts.Lenders = directory.DefaultLenders()
	}
	if opts.Realtors == nil {
		opts.Realtors = directory.DefaultRealtors()
	}
	if opts.Cache == nil {
		opts.Cache = cache.Nop{}
	}
	if opts.CacheKeyPrefix == "" {
		opts.CacheKeyPrefix = constants.DefaultCacheKeyPrefix
	}

	generator := combination.NewGenerator(cat)
	if opts.MaxComboSize > 0 {
		generator.MaxSize = opts.MaxComboSize
	}
	if opts.MaxCombos > 0 {
		generator.Limit = opts.MaxCombos
	}

	e := &Engine{
		logger:    logger,
		catalog:   cat,
		policy:    opts.Policy,
		generator: generator,
		top:       opts.TopPackages,
		lenders:   append([]directory.Lender(nil), opts.Lenders...),
		realtors:  append([]directory.Realtor(nil), opts.Realtors...),
		cache:     opts.Cache,
		prefix:    opts.CacheKeyPrefix,
	}
	e.fingerprint = e.computeFingerprint()
	return e
}

// NewFromConfig builds an engine and its cache backend from configuration.
// The caller owns the engine and should Close it.
func NewFromConfig(ctx context.Context, logger *zap.Logger, conf *config.Configuration) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := conf.LoadCatalog()
	if err != nil {
		return nil, err
	}

	c, err := cache.New(ctx, conf.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	return New(logger, cat, Options{
		Policy:         conf.Policy,
		MaxComboSize:   conf.Combinations.MaxSize,
		MaxCombos:      conf.Combinations.Limit,
		TopPackages:    conf.Ranking.Top,
		Cache:          c,
		CacheKeyPrefix: conf.Cache.Prefix,
	}), nil
}

// computeFingerprint identifies the catalog, policy and bounds so cached
// recommendations from a differently configured engine are never reused.
func (e *Engine) computeFingerprint() string {
	catalogBytes, err := e.catalog.Marshal()
	if err != nil {
		e.logger.Warn("failed to marshal catalog for cache fingerprint",
			zap.String("op", "navigator.computeFingerprint"),
			zap.Error(err),
		)
	}
	policyBytes, _ := json.Marshal(e.policy)
	bounds := strconv.Itoa(e.generator.MaxSize) + "/" + strconv.Itoa(e.generator.Limit) + "/" + strconv.Itoa(e.top)
	return cache.Fingerprint(catalogBytes, policyBytes, []byte(bounds))
}

// Close releases the cache backend.
func (e *Engine) Close() error {
	return e.cache.Close()
}

// Catalog returns the engine's program catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Policy returns the affordability assumptions in use.
func (e *Engine) Policy() affordability.Policy {
	return e.policy
}

// Lenders returns a copy of the lender directory.
func (e *Engine) Lenders() []directory.Lender {
	return append([]directory.Lender(nil), e.lenders...)
}

// Realtors returns a copy of the realtor directory.
func (e *Engine) Realtors() []directory.Realtor {
	return append([]directory.Realtor(nil), e.realtors...)
}

// EligiblePrograms returns the catalog programs p qualifies for.
func (e *Engine) EligiblePrograms(p profile.Profile) []catalog.Program {
	return eligibility.Eligible(e.catalog, p)
}

// GenerateCombinations returns the stackable program sets among eligible.
func (e *Engine) GenerateCombinations(eligible []catalog.Program) [][]string {
	return e.generator.Generate(eligible)
}

// IsValidCombination reports whether ids can be stacked under the catalog's conflicts.
func (e *Engine) IsValidCombination(ids []string) bool {
	return e.generator.IsValid(ids)
}

// ComputeAffordability returns the baseline for income and savings.
func (e *Engine) ComputeAffordability(income, savings int) affordability.Result {
	return affordability.Compute(e.policy, income, savings)
}

// BuildPackages evaluates and ranks combos against baseline.
func (e *Engine) BuildPackages(combos [][]string, baseline affordability.Result, savings int) []packages.Package {
	return packages.Build(combos, e.catalog, baseline, savings, e.policy, e.top)
}

// MatchLenders returns the lenders able to originate every program in ids.
func (e *Engine) MatchLenders(ids []string) []directory.Lender {
	return provider.MatchLenders(e.lenders, ids)
}

// MatchRealtorsByCounty returns the realtors working in county.
func (e *Engine) MatchRealtorsByCounty(county string) []directory.Realtor {
	return provider.MatchRealtors(e.realtors, county)
}

// AssessCreditReadiness looks up the readiness of bracket.
func (e *Engine) AssessCreditReadiness(bracket profile.CreditBracket) credit.Assessment {
	return credit.Assess(bracket)
}

// Recommend runs the pipeline for p. Cache failures are logged and the
// recommendation is computed directly; the only error is a cancelled context.
func (e *Engine) Recommend(ctx context.Context, p profile.Profile) (Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, err
	}

	p = p.Normalize()
	key := cache.Key(e.prefix, e.fingerprint, p)

	if rec, ok := e.cached(ctx, key); ok {
		// Fields outside the key, such as household size, come from the caller.
		rec.Profile = p
		return rec, nil
	}

	start := time.Now()
	rec := e.compute(p)

	e.logger.Debug("recommendation computed",
		zap.String("op", "navigator.Recommend"),
		zap.Bool("complete", rec.Complete),
		zap.Int("eligible", len(rec.Eligible)),
		zap.Int("combinations", len(rec.Combinations)),
		zap.Int("packages", len(rec.Packages)),
		zap.Duration("duration", time.Since(start)),
	)

	e.store(ctx, key, rec)
	return rec, nil
}

// Update applies u to p and recommends for the result.
func (e *Engine) Update(ctx context.Context, p profile.Profile, u profile.Update) (profile.Profile, Recommendation, error) {
	next := profile.Apply(p, u)
	rec, err := e.Recommend(ctx, next)
	if err != nil {
		return p, Recommendation{}, err
	}
	return next, rec, nil
}

func (e *Engine) compute(p profile.Profile) Recommendation {
	baseline := e.ComputeAffordability(p.Income, p.Savings)
	eligible := e.EligiblePrograms(p)
	dpa, affordable := eligibility.Split(eligible)

	combos := e.GenerateCombinations(dpa)
	truncated := e.generator.Truncated(dpa)
	if truncated {
		e.logger.Warn("combination generation truncated",
			zap.String("op", "navigator.compute"),
			zap.Int("limit", e.generator.Limit),
			zap.Int("eligible", len(dpa)),
		)
	}

	rec := Recommendation{
		Profile:           p,
		Complete:          p.Complete(),
		Credit:            e.AssessCreditReadiness(p.Credit),
		Baseline:          baseline,
		Eligible:          dpa,
		AffordableHousing: affordable,
		Rejections:        eligibility.Reasons(e.catalog, p),
		MaxAssistance:     eligibility.MaxSingleAssistance(dpa, baseline.MaxPrice),
		Combinations:      combos,
		Truncated:         truncated,
		Packages:          e.BuildPackages(combos, baseline, p.Savings),
		Lenders:           e.MatchLenders(p.SelectedPrograms),
		Realtors:          e.MatchRealtorsByCounty(p.County),
	}

	if len(p.SelectedPrograms) > 0 {
		match := provider.Summarize(rec.Lenders)
		rec.LenderMatch = &match
	}
	return rec
}

func (e *Engine) cached(ctx context.Context, key string) (Recommendation, bool) {
	data, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("recommendation cache read failed",
			zap.String("op", "navigator.cached"),
			zap.Error(err),
		)
		return Recommendation{}, false
	}
	if !ok {
		return Recommendation{}, false
	}

	var rec Recommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		e.logger.Warn("discarding undecodable cached recommendation",
			zap.String("op", "navigator.cached"),
			zap.Error(err),
		)
		return Recommendation{}, false
	}

	e.logger.Debug("recommendation cache hit",
		zap.String("op", "navigator.cached"),
	)
	return rec, true
}

func (e *Engine) store(ctx context.Context, key string, rec Recommendation) {
	data, err := json.Marshal(rec)
	if err != nil {
		e.logger.Warn("failed to encode recommendation for cache",
			zap.String("op", "navigator.store"),
			zap.Error(err),
		)
		return
	}
	if err := e.cache.Set(ctx, key, data); err != nil {
		e.logger.Warn("recommendation cache write failed",
			zap.String("op", "navigator.store"),
			zap.Error(err),
		)
	}
}
