package experiment

import (
	"github.com/san-kum/matcube/internal/accum"
	"github.com/san-kum/matcube/internal/metrics"
	"github.com/san-kum/matcube/internal/space"
)

// MetricObserver adapts a metric set to the playback observer
// surface, fanning every consumed step out to all metrics.
type MetricObserver struct {
	Metrics []metrics.Metric
}

func NewMetricObserver(ms []metrics.Metric) *MetricObserver {
	return &MetricObserver{Metrics: ms}
}

func (o *MetricObserver) OnStep(step space.MacStep, _ accum.Delta) {
	for _, m := range o.Metrics {
		m.Observe(step)
	}
}

func (o *MetricObserver) Values() map[string]float64 {
	vals := make(map[string]float64, len(o.Metrics))
	for _, m := range o.Metrics {
		vals[m.Name()] = m.Value()
	}
	return vals
}

func (o *MetricObserver) Reset() {
	for _, m := range o.Metrics {
		m.Reset()
	}
}
