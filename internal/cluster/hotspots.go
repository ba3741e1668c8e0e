package cluster

import (
	"sort"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/config"
	"github.com/sells-group/location-insights/internal/model"
)

// AnnotateEvents runs DBSCAN over all event coordinates and writes the
// resulting label onto each event. Returns the number of non-noise clusters.
func AnnotateEvents(events []model.Event, cfg config.Cluster) int {
	coords := make([]geom.Coord, len(events))
	for i := range events {
		coords[i] = events[i].Coord()
	}

	labels := DBSCAN{Eps: cfg.EpsDegrees, MinPts: cfg.MinPoints}.Fit(coords)

	clusters := 0
	for i, label := range labels {
		events[i].Cluster = label
		if label+1 > clusters {
			clusters = label + 1
		}
	}

	zap.L().Info("cluster: DBSCAN complete",
		zap.Int("events", len(events)),
		zap.Int("clusters", clusters),
		zap.Float64("eps_degrees", cfg.EpsDegrees),
		zap.Int("min_points", cfg.MinPoints),
	)
	return clusters
}

// Summarize rolls labeled events up into per-cluster counts and centroids,
// noise excluded, largest cluster first.
func Summarize(events []model.Event) []model.ClusterSummary {
	type acc struct {
		count  int
		latSum float64
		lonSum float64
	}
	byCluster := make(map[int]*acc)
	for i := range events {
		label := events[i].Cluster
		if label == Noise {
			continue
		}
		a := byCluster[label]
		if a == nil {
			a = &acc{}
			byCluster[label] = a
		}
		a.count++
		a.latSum += events[i].Lat
		a.lonSum += events[i].Lon
	}

	summaries := make([]model.ClusterSummary, 0, len(byCluster))
	for label, a := range byCluster {
		summaries = append(summaries, model.ClusterSummary{
			Cluster: label,
			Events:  a.count,
			AvgLat:  a.latSum / float64(a.count),
			AvgLon:  a.lonSum / float64(a.count),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Events != summaries[j].Events {
			return summaries[i].Events > summaries[j].Events
		}
		return summaries[i].Cluster < summaries[j].Cluster
	})
	return summaries
}
