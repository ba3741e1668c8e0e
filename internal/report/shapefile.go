package report

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/model"
)

// WriteHotspotShapefile exports cluster centroids as a point shapefile so
// the hotspots can be pulled straight into GIS tooling alongside the map.
func WriteHotspotShapefile(path string, hotspots []model.ClusterSummary) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "report: create shapefile %s", path)
	}
	defer w.Close()

	w.SetFields([]shp.Field{
		shp.NumberField("CLUSTER", 10),
		shp.NumberField("EVENTS", 10),
		shp.FloatField("AVG_LAT", 12, 6),
		shp.FloatField("AVG_LON", 12, 6),
	})

	for i, h := range hotspots {
		w.Write(&shp.Point{X: h.AvgLon, Y: h.AvgLat})
		w.WriteAttribute(i, 0, h.Cluster)
		w.WriteAttribute(i, 1, h.Events)
		w.WriteAttribute(i, 2, h.AvgLat)
		w.WriteAttribute(i, 3, h.AvgLon)
	}

	zap.L().Info("report: wrote hotspot shapefile", zap.String("path", path), zap.Int("points", len(hotspots)))
	return nil
}
