package model

import (
	"time"

	"github.com/twpayne/go-geom"
)

// NoiseLabel marks events that DBSCAN could not assign to any dense cluster.
const NoiseLabel = -1

// User is a synthetic platform user pinned near one of the target cities.
// Immutable after generation.
type User struct {
	ID           string
	City         string
	Lat          float64
	Lon          float64
	Timezone     string
	MatchSuccess float64 // [0,1]
}

// Event is a single behavioral location ping for a user. Cluster is
// NoiseLabel until the clustering pass annotates it.
type Event struct {
	UserID    string
	City      string
	Lat       float64
	Lon       float64
	Time      time.Time
	Hour      int
	Weekday   int // 0=Mon .. 6=Sun
	IsWeekend bool
	Cluster   int
}

// Coord returns the event position as a planar XY coordinate (lon, lat),
// the axis order the geometry helpers expect.
func (e *Event) Coord() geom.Coord {
	return geom.Coord{e.Lon, e.Lat}
}
