package model

// CityMetrics is the per-city joined aggregate plus its normalized columns
// and composite launch-zone score. Rebuilt from scratch on every run.
type CityMetrics struct {
	City        string
	Users       int
	Events      int
	AvgSuccess  float64
	UsersNorm   float64
	EventsNorm  float64
	SuccessNorm float64
	Score       float64
}

// ClusterSummary describes one non-noise DBSCAN hotspot.
type ClusterSummary struct {
	Cluster int
	Events  int
	AvgLat  float64
	AvgLon  float64
}
