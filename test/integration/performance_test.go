package integration

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/internal/config"
	"github.com/iwvelando/dpa-navigator/internal/navigator"
	"github.com/iwvelando/dpa-navigator/internal/profile"
	"github.com/iwvelando/dpa-navigator/pkg/testutil"
	"go.uber.org/zap"
)

// TestPerformance checks that a full recommendation stays interactive.
func TestPerformance(t *testing.T) {
	engine := navigator.New(zap.NewNop(), nil, navigator.Options{})
	p := testutil.NewProfile("Denver", 85000, 10000)

	start := time.Now()
	if _, err := engine.Recommend(context.Background(), p); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	elapsed := time.Since(start)

	t.Logf("Recommendation computed in %v", elapsed)
	if elapsed > time.Second {
		t.Errorf("Recommend took %v, expected well under a second", elapsed)
	}
}

// TestTriplesStayBounded enables three-program stacking against a catalog
// where every program qualifies and checks the generation limit holds.
func TestTriplesStayBounded(t *testing.T) {
	programs := make([]catalog.Program, 0, 20)
	for i := 0; i < 20; i++ {
		programs = append(programs, catalog.Program{
			ID:         "local-" + string(rune('a'+i)),
			Name:       "Local Program",
			Counties:   []string{"Denver"},
			MaxIncome:  200000,
			Assistance: catalog.Flat(float64(1000 * (i + 1))),
			Category:   catalog.CategoryLocal,
		})
	}
	cat, err := catalog.New(programs, nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	engine := navigator.New(zap.NewNop(), cat, navigator.Options{MaxComboSize: 3, MaxCombos: 500})
	rec, err := engine.Recommend(context.Background(), testutil.NewProfile("Denver", 85000, 10000))
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(rec.Combinations) != 500 {
		t.Errorf("expected the 500 combination limit, got %d", len(rec.Combinations))
	}
	if !rec.Truncated {
		t.Error("expected the recommendation to report truncation")
	}
	if len(rec.Packages) != 4 {
		t.Errorf("expected 4 ranked packages, got %d", len(rec.Packages))
	}
}

// TestConcurrentRecommendations shares one cached engine across goroutines.
func TestConcurrentRecommendations(t *testing.T) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	engine, err := navigator.NewFromConfig(context.Background(), zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	defer engine.Close()

	counties := []string{"Denver", "Boulder", "Mesa", "Adams"}
	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := testutil.NewProfile(counties[i%len(counties)], 50000+1000*(i%5), 5000)
			if _, err := engine.Recommend(context.Background(), p); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Recommend() error = %v", err)
	}
}

// TestMemoryUsage makes sure repeated recommendations do not accumulate.
func TestMemoryUsage(t *testing.T) {
	engine := navigator.New(zap.NewNop(), nil, navigator.Options{})
	p := testutil.NewProfile("Denver", 85000, 10000)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	for i := 0; i < 200; i++ {
		p.Savings = i * 100
		if _, err := engine.Recommend(context.Background(), p); err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
	}

	runtime.GC()
	runtime.ReadMemStats(&after)

	growth := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	t.Logf("Heap growth after 200 recommendations: %d bytes", growth)
	if growth > 32<<20 {
		t.Errorf("heap grew by %d bytes", growth)
	}
}

func BenchmarkRecommend(b *testing.B) {
	engine := navigator.New(zap.NewNop(), nil, navigator.Options{})
	p := testutil.NewProfile("Denver", 85000, 10000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Recommend(ctx, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecommendCached(b *testing.B) {
	engine := newEngine(b)
	p := testutil.NewProfile("Denver", 85000, 10000)
	ctx := context.Background()

	if _, err := engine.Recommend(ctx, p); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Recommend(ctx, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdate(b *testing.B) {
	engine := navigator.New(zap.NewNop(), nil, navigator.Options{})
	ctx := context.Background()
	base := testutil.NewProfile("Denver", 85000, 10000)
	update := profile.FromForm(map[string]string{profile.FieldSavings: "12,500"})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := engine.Update(ctx, base, update); err != nil {
			b.Fatal(err)
		}
	}
}
