// Package scorer turns per-city aggregates into a ranked list of
// recommended event launch zones.
package scorer

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/config"
	"github.com/sells-group/location-insights/internal/model"
)

// Score min-max normalizes the three city metrics independently and fills
// in the weighted composite. A flat metric (min == max) normalizes to 0.0
// everywhere rather than dividing by zero, so it contributes nothing.
func Score(metrics []model.CityMetrics, cfg config.Score) {
	users := normalize(metrics, func(m *model.CityMetrics) float64 { return float64(m.Users) })
	events := normalize(metrics, func(m *model.CityMetrics) float64 { return float64(m.Events) })
	success := normalize(metrics, func(m *model.CityMetrics) float64 { return m.AvgSuccess })

	for i := range metrics {
		metrics[i].UsersNorm = users[i]
		metrics[i].EventsNorm = events[i]
		metrics[i].SuccessNorm = success[i]
		metrics[i].Score = cfg.UsersWeight*users[i] +
			cfg.EventsWeight*events[i] +
			cfg.SuccessWeight*success[i]
	}

	zap.L().Info("scorer: scored cities", zap.Int("cities", len(metrics)))
}

// Rank returns the topN cities by descending composite score (all of them
// when fewer exist). The sort is stable, so ties keep their incoming
// relative order; callers must not read meaning into tie order.
func Rank(metrics []model.CityMetrics, topN int) []model.CityMetrics {
	ranked := append([]model.CityMetrics(nil), metrics...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

func normalize(metrics []model.CityMetrics, get func(*model.CityMetrics) float64) []float64 {
	out := make([]float64, len(metrics))
	if len(metrics) == 0 {
		return out
	}

	lo, hi := get(&metrics[0]), get(&metrics[0])
	for i := range metrics {
		v := get(&metrics[i])
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return out
	}

	for i := range metrics {
		out[i] = (get(&metrics[i]) - lo) / (hi - lo)
	}
	return out
}
