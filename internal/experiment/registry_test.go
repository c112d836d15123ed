package experiment

import (
	"testing"

	"github.com/san-kum/matcube/internal/accum"
	"github.com/san-kum/matcube/internal/config"
	"github.com/san-kum/matcube/internal/space"
)

func TestRegistryNaive(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.Order = "kji"

	alg, err := r.Algorithm("naive", cfg)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if alg.Name() != "naive-kji" {
		t.Errorf("got %q", alg.Name())
	}
	if _, err := alg.Generator(space.Dims{M: 2, N: 2, K: 2}); err != nil {
		t.Errorf("generator failed: %v", err)
	}
}

func TestRegistryTiled(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.TileM, cfg.TileN, cfg.TileK = 2, 2, 2

	alg, err := r.Algorithm("tiled", cfg)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if _, err := alg.Generator(space.Dims{M: 4, N: 4, K: 4}); err != nil {
		t.Errorf("generator failed: %v", err)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Algorithm("systolic", config.DefaultConfig()); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestRegistryBadOrder(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.Order = "iii"
	if _, err := r.Algorithm("naive", cfg); err == nil {
		t.Error("expected error for malformed order")
	}
}

func TestListAlgorithms(t *testing.T) {
	names := NewRegistry().ListAlgorithms()
	if len(names) != 2 {
		t.Fatalf("expected 2 algorithms, got %v", names)
	}
}

func TestMetricObserver(t *testing.T) {
	r := NewRegistry()
	obs := NewMetricObserver(r.DefaultMetrics())

	obs.OnStep(space.MacStep{I: 0, J: 0, K: 0}, accum.Delta{})

	vals := obs.Values()
	if len(vals) != 4 {
		t.Fatalf("expected 4 metric values, got %d", len(vals))
	}
	if vals["working_set"] != 2 {
		t.Errorf("working set after one step = %v, want 2", vals["working_set"])
	}

	obs.Reset()
	if obs.Values()["working_set"] != 0 {
		t.Error("Reset did not clear metrics")
	}
}
