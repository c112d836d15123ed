package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/matcube/internal/config"
	"github.com/san-kum/matcube/internal/metrics"
	"github.com/san-kum/matcube/internal/traversal"
)

// Registry maps algorithm names to traversal constructors.
type Registry struct {
	algorithms map[string]func(cfg *config.Config) (traversal.Algorithm, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func(cfg *config.Config) (traversal.Algorithm, error)),
	}

	r.algorithms["naive"] = func(cfg *config.Config) (traversal.Algorithm, error) {
		order, err := traversal.ParseOrder(cfg.Order)
		if err != nil {
			return nil, err
		}
		return traversal.Naive{Order: order}, nil
	}
	r.algorithms["tiled"] = func(cfg *config.Config) (traversal.Algorithm, error) {
		outer, err := traversal.ParseOrder(cfg.Outer)
		if err != nil {
			return nil, err
		}
		inner, err := traversal.ParseOrder(cfg.Inner)
		if err != nil {
			return nil, err
		}
		return traversal.Tiled{
			TileM: cfg.TileM,
			TileN: cfg.TileN,
			TileK: cfg.TileK,
			Outer: outer,
			Inner: inner,
		}, nil
	}

	return r
}

// Algorithm builds the named algorithm from cfg. Systolic variants are
// deliberately absent: they slot in as another entry once their
// schedule is defined.
func (r *Registry) Algorithm(name string, cfg *config.Config) (traversal.Algorithm, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return fn(cfg)
}

func (r *Registry) ListAlgorithms() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics is the locality panel every run gets.
func (r *Registry) DefaultMetrics() []metrics.Metric {
	return []metrics.Metric{
		metrics.NewOperandSwitch(metrics.OperandA),
		metrics.NewOperandSwitch(metrics.OperandB),
		metrics.NewOperandSwitch(metrics.OperandC),
		metrics.NewWorkingSet(64),
	}
}
