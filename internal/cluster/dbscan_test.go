package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

// tightGroup returns n points packed inside a 0.2x0.2 box at (x, y).
func tightGroup(x, y float64, n int) []geom.Coord {
	coords := make([]geom.Coord, 0, n)
	for i := 0; i < n; i++ {
		dx := float64(i%5) * 0.04
		dy := float64(i/5) * 0.04
		coords = append(coords, geom.Coord{x + dx, y + dy})
	}
	return coords
}

func TestDBSCAN_ThreeGroupsPlusOutliers(t *testing.T) {
	var coords []geom.Coord
	coords = append(coords, tightGroup(0, 0, 10)...)
	coords = append(coords, tightGroup(5, 5, 10)...)
	coords = append(coords, tightGroup(10, 0, 10)...)
	outlierStart := len(coords)
	coords = append(coords, geom.Coord{20, 20}, geom.Coord{-15, 3}, geom.Coord{7, -12})

	labels := DBSCAN{Eps: 0.5, MinPts: 5}.Fit(coords)
	require.Len(t, labels, len(coords))

	// Each tight group maps to exactly one label, groups get distinct labels.
	groups := make(map[int]map[int]bool)
	for g := 0; g < 3; g++ {
		seen := make(map[int]bool)
		for i := g * 10; i < (g+1)*10; i++ {
			require.NotEqual(t, Noise, labels[i], "group %d point labeled noise", g)
			seen[labels[i]] = true
		}
		assert.Len(t, seen, 1, "group %d split across clusters", g)
		groups[g] = seen
	}
	distinct := make(map[int]bool)
	for _, seen := range groups {
		for label := range seen {
			distinct[label] = true
		}
	}
	assert.Len(t, distinct, 3, "groups merged")

	for i := outlierStart; i < len(coords); i++ {
		assert.Equal(t, Noise, labels[i], "outlier %d not labeled noise", i)
	}
}

func TestDBSCAN_TransitiveChaining(t *testing.T) {
	// A chain of points 0.4 apart: consecutive points are density-reachable,
	// the endpoints are 4.0 apart, far beyond eps. One cluster.
	var coords []geom.Coord
	for i := 0; i <= 10; i++ {
		coords = append(coords, geom.Coord{float64(i) * 0.4, 0})
	}

	labels := DBSCAN{Eps: 0.5, MinPts: 2}.Fit(coords)
	for i, label := range labels {
		assert.Equal(t, 0, label, "point %d", i)
	}
}

func TestDBSCAN_MinPtsCountsThePointItself(t *testing.T) {
	// Two coincident points: neighborhood size 2 for each.
	coords := []geom.Coord{{1, 1}, {1, 1}}

	labels := DBSCAN{Eps: 0.5, MinPts: 2}.Fit(coords)
	assert.Equal(t, []int{0, 0}, labels)

	labels = DBSCAN{Eps: 0.5, MinPts: 3}.Fit(coords)
	assert.Equal(t, []int{Noise, Noise}, labels)
}

func TestDBSCAN_Empty(t *testing.T) {
	assert.Empty(t, DBSCAN{Eps: 0.5, MinPts: 3}.Fit(nil))
}

func TestDBSCAN_AllNoise(t *testing.T) {
	coords := []geom.Coord{{0, 0}, {10, 10}, {-10, 5}}
	labels := DBSCAN{Eps: 0.5, MinPts: 2}.Fit(coords)
	assert.Equal(t, []int{Noise, Noise, Noise}, labels)
}

func TestDBSCAN_BorderPointJoinsFirstCluster(t *testing.T) {
	// A dense core plus one border point within eps of the core but not
	// dense itself: the border point joins the cluster instead of noise.
	coords := tightGroup(0, 0, 6)
	coords = append(coords, geom.Coord{0.55, 0})

	labels := DBSCAN{Eps: 0.5, MinPts: 6}.Fit(coords)
	assert.Equal(t, 0, labels[len(labels)-1])
}
