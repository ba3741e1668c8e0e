// Package cluster finds geographic hotspots in the event stream with
// standard DBSCAN over raw coordinates in degree units.
package cluster

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Noise is the reserved label for points with no sufficiently dense
// neighborhood.
const Noise = -1

// DBSCAN labels each input coordinate with a cluster id (0..k-1) or Noise.
// A point is core when its eps-neighborhood, itself included, holds at least
// minPts points; clusters grow transitively through core points, so two
// points farther apart than eps still share a cluster when a chain of dense
// neighborhoods connects them. Labels are assigned in input scan order.
type DBSCAN struct {
	Eps    float64 // neighborhood radius, Euclidean, same units as the coords
	MinPts int
}

// Fit returns one label per coordinate. The input is not deduplicated;
// coincident points each count toward density.
func (d DBSCAN) Fit(coords []geom.Coord) []int {
	n := len(coords)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}
	if n == 0 {
		return labels
	}

	idx := newGridIndex(coords, d.Eps)
	visited := make([]bool, n)
	next := 0

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := idx.query(i)
		if len(neighbors) < d.MinPts {
			continue
		}

		labels[i] = next
		queue := append([]int(nil), neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]

			if !visited[j] {
				visited[j] = true
				if reachable := idx.query(j); len(reachable) >= d.MinPts {
					queue = append(queue, reachable...)
				}
			}
			if labels[j] == Noise {
				labels[j] = next
			}
		}
		next++
	}

	return labels
}

// gridIndex buckets points into eps-sized cells so a neighborhood query only
// scans the 3x3 block around a point instead of the whole set.
type gridIndex struct {
	coords []geom.Coord
	eps    float64
	cells  map[[2]int][]int
}

func newGridIndex(coords []geom.Coord, eps float64) *gridIndex {
	g := &gridIndex{
		coords: coords,
		eps:    eps,
		cells:  make(map[[2]int][]int),
	}
	for i, c := range coords {
		key := g.cellOf(c)
		g.cells[key] = append(g.cells[key], i)
	}
	return g
}

func (g *gridIndex) cellOf(c geom.Coord) [2]int {
	return [2]int{int(math.Floor(c.X() / g.eps)), int(math.Floor(c.Y() / g.eps))}
}

// query returns the indices of all points within eps of point i, i included.
func (g *gridIndex) query(i int) []int {
	center := g.coords[i]
	cell := g.cellOf(center)

	var out []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, j := range g.cells[[2]int{cell[0] + dx, cell[1] + dy}] {
				if xy.Distance(center, g.coords[j]) <= g.eps {
					out = append(out, j)
				}
			}
		}
	}
	return out
}
