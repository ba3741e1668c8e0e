package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/location-insights/internal/aggregate"
	"github.com/sells-group/location-insights/internal/model"
)

func TestPrintCityTable_SortedByUsersDesc(t *testing.T) {
	metrics := []model.CityMetrics{
		{City: "Delhi", Users: 10, Events: 100, AvgSuccess: 0.5},
		{City: "Mumbai", Users: 30, Events: 700, AvgSuccess: 0.6},
	}

	var buf bytes.Buffer
	PrintCityTable(&buf, metrics)

	out := buf.String()
	assert.Contains(t, out, "Users per City")
	assert.Less(t, indexOf(out, "Mumbai"), indexOf(out, "Delhi"))
}

func TestPrintHourlyPivot(t *testing.T) {
	h := aggregate.Hourly([]model.Event{
		{Hour: 18, Weekday: 0},
		{Hour: 18, Weekday: 6, IsWeekend: true},
	})

	var buf bytes.Buffer
	PrintHourlyPivot(&buf, &h)

	out := buf.String()
	assert.Contains(t, out, "Peak usage hour (overall): 18:00")
	assert.Contains(t, out, "Weekday events: 1")
	assert.Contains(t, out, "Weekend events: 1")
}

func TestPrintClusterTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintClusterTable(&buf, nil)
	assert.Contains(t, buf.String(), "No dense clusters found")
}

func TestPrintRanking(t *testing.T) {
	ranked := []model.CityMetrics{
		{City: "Mumbai", Users: 30, Events: 700, AvgSuccess: 0.6, Score: 0.95},
		{City: "Delhi", Users: 25, Events: 650, AvgSuccess: 0.55, Score: 0.81},
	}

	var buf bytes.Buffer
	PrintRanking(&buf, ranked)

	out := buf.String()
	assert.Contains(t, out, "Top 2")
	assert.Less(t, indexOf(out, "Mumbai"), indexOf(out, "Delhi"))
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}
