package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/location-insights/internal/config"
	"github.com/sells-group/location-insights/internal/model"
)

func scoreCfg() config.Score {
	return config.Score{UsersWeight: 0.4, EventsWeight: 0.4, SuccessWeight: 0.2, TopN: 5}
}

func TestScore_NormalizedRangeAndComposite(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Users: 10, Events: 100, AvgSuccess: 0.5},
		{City: "B", Users: 30, Events: 300, AvgSuccess: 0.7},
		{City: "C", Users: 20, Events: 50, AvgSuccess: 0.9},
	}

	Score(metrics, scoreCfg())

	for _, m := range metrics {
		assert.GreaterOrEqual(t, m.UsersNorm, 0.0)
		assert.LessOrEqual(t, m.UsersNorm, 1.0)
		assert.GreaterOrEqual(t, m.EventsNorm, 0.0)
		assert.LessOrEqual(t, m.EventsNorm, 1.0)
		assert.GreaterOrEqual(t, m.SuccessNorm, 0.0)
		assert.LessOrEqual(t, m.SuccessNorm, 1.0)
		assert.InDelta(t, 0.4*m.UsersNorm+0.4*m.EventsNorm+0.2*m.SuccessNorm, m.Score, 1e-12)
	}

	// B has max users and events, C max success.
	assert.InDelta(t, 1.0, metrics[1].UsersNorm, 1e-12)
	assert.InDelta(t, 1.0, metrics[1].EventsNorm, 1e-12)
	assert.InDelta(t, 1.0, metrics[2].SuccessNorm, 1e-12)
}

func TestScore_MaxInEveryMetricScoresOne(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Users: 5, Events: 10, AvgSuccess: 0.2},
		{City: "B", Users: 50, Events: 500, AvgSuccess: 0.9},
	}

	Score(metrics, scoreCfg())
	assert.InDelta(t, 1.0, metrics[1].Score, 1e-12)
	assert.InDelta(t, 0.0, metrics[0].Score, 1e-12)
}

func TestScore_FlatMetricNormalizesToZero(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Users: 7, Events: 10, AvgSuccess: 0.2},
		{City: "B", Users: 7, Events: 20, AvgSuccess: 0.4},
		{City: "C", Users: 7, Events: 30, AvgSuccess: 0.6},
	}

	Score(metrics, scoreCfg())
	for _, m := range metrics {
		assert.Equal(t, 0.0, m.UsersNorm)
	}
}

func TestRank_TopNDescending(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Score: 0.2},
		{City: "B", Score: 0.9},
		{City: "C", Score: 0.5},
		{City: "D", Score: 0.7},
		{City: "E", Score: 0.1},
		{City: "F", Score: 0.6},
	}

	ranked := Rank(metrics, 5)
	require.Len(t, ranked, 5)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Equal(t, "B", ranked[0].City)
}

func TestRank_FewerThanTopN(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Score: 0.2},
		{City: "B", Score: 0.9},
	}
	ranked := Rank(metrics, 5)
	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].City)
}

func TestRank_StableTies(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Score: 0.5},
		{City: "B", Score: 0.5},
		{City: "C", Score: 0.5},
	}
	ranked := Rank(metrics, 3)
	assert.Equal(t, "A", ranked[0].City)
	assert.Equal(t, "B", ranked[1].City)
	assert.Equal(t, "C", ranked[2].City)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "A", Score: 0.1},
		{City: "B", Score: 0.9},
	}
	_ = Rank(metrics, 1)
	assert.Equal(t, "A", metrics[0].City)
}
