package report

import (
	"encoding/json"
	"html/template"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/config"
	"github.com/sells-group/location-insights/internal/model"
)

// cityMarker is a per-city circle marker placed at the mean user position.
type cityMarker struct {
	City   string  `json:"city"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Users  int     `json:"users"`
	Radius float64 `json:"radius"`
}

type hotspotMarker struct {
	Cluster int     `json:"cluster"`
	Events  int     `json:"events"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// mapData is everything the Leaflet template needs, serialized to JSON.
type mapData struct {
	Center    [2]float64      `json:"center"`
	Zoom      int             `json:"zoom"`
	Cities    []cityMarker    `json:"cities"`
	Heat      [][2]float64    `json:"heat"`
	Hotspots  []hotspotMarker `json:"hotspots"`
	HotspotM  float64         `json:"hotspot_radius_m"`
	RunID     string          `json:"run_id"`
	Generated string          `json:"generated"`
}

// WriteMap renders the self-contained interactive map: city circles sized by
// population, an event density heat layer, and one fixed-radius circle per
// hotspot cluster.
func WriteMap(path string, cfg config.Map, users []model.User, metrics []model.CityMetrics,
	events []model.Event, hotspots []model.ClusterSummary, runID, generated string) error {

	data := mapData{
		Center:    [2]float64{cfg.CenterLat, cfg.CenterLon},
		Zoom:      cfg.Zoom,
		Cities:    cityMarkers(users, metrics),
		Heat:      heatPoints(events),
		HotspotM:  cfg.HotspotRadiusM,
		RunID:     runID,
		Generated: generated,
	}
	for _, h := range hotspots {
		data.Hotspots = append(data.Hotspots, hotspotMarker{
			Cluster: h.Cluster,
			Events:  h.Events,
			Lat:     h.AvgLat,
			Lon:     h.AvgLon,
		})
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return eris.Wrap(err, "report: marshal map data")
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	tmplData := struct {
		RunID string
		Data  template.JS
	}{
		RunID: runID,
		Data:  template.JS(payload), //nolint:gosec // payload is json.Marshal output
	}
	if err := mapTemplate.Execute(f, tmplData); err != nil {
		return eris.Wrap(err, "report: render map")
	}

	zap.L().Info("report: wrote map",
		zap.String("path", path),
		zap.Int("city_markers", len(data.Cities)),
		zap.Int("heat_points", len(data.Heat)),
		zap.Int("hotspots", len(data.Hotspots)),
	)
	return nil
}

// cityMarkers places one marker per metrics row at the mean coordinate of
// that city's users, sized 4 + users/30 like the original report.
func cityMarkers(users []model.User, metrics []model.CityMetrics) []cityMarker {
	type acc struct {
		latSum, lonSum float64
		n              int
	}
	byCity := make(map[string]*acc)
	for i := range users {
		a := byCity[users[i].City]
		if a == nil {
			a = &acc{}
			byCity[users[i].City] = a
		}
		a.latSum += users[i].Lat
		a.lonSum += users[i].Lon
		a.n++
	}

	markers := make([]cityMarker, 0, len(metrics))
	for _, m := range metrics {
		a := byCity[m.City]
		if a == nil || a.n == 0 {
			continue
		}
		markers = append(markers, cityMarker{
			City:   m.City,
			Lat:    a.latSum / float64(a.n),
			Lon:    a.lonSum / float64(a.n),
			Users:  m.Users,
			Radius: 4 + float64(m.Users)/30,
		})
	}
	return markers
}

func heatPoints(events []model.Event) [][2]float64 {
	pts := make([][2]float64, len(events))
	for i := range events {
		pts[i] = [2]float64{events[i].Lat, events[i].Lon}
	}
	return pts
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>User Distribution Map</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>
<style>
  html, body, #map { height: 100%; margin: 0; }
  .footer {
    position: absolute; bottom: 0; right: 0; z-index: 1000;
    background: rgba(255,255,255,0.8); font: 11px sans-serif; padding: 2px 6px;
  }
</style>
</head>
<body>
<div id="map"></div>
<div class="footer">run {{.RunID}}</div>
<script>
var data = {{.Data}};

var map = L.map('map').setView(data.center, data.zoom);
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

data.cities.forEach(function (c) {
  L.circleMarker([c.lat, c.lon], {
    radius: c.radius,
    fill: true,
    fillOpacity: 0.7
  }).bindPopup(c.city + ': ' + c.users + ' users')
    .bindTooltip(c.city + ': ' + c.users + ' users')
    .addTo(map);
});

L.heatLayer(data.heat, { radius: 10, blur: 15 }).addTo(map);

data.hotspots.forEach(function (h) {
  L.circle([h.lat, h.lon], {
    radius: data.hotspot_radius_m,
    fill: false
  }).bindPopup('Cluster ' + h.cluster + ' - ' + h.events + ' events')
    .bindTooltip('Hotspot Cluster ' + h.cluster)
    .addTo(map);
});
</script>
</body>
</html>
`))
