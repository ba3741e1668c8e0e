package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/model"
)

// WriteWorkbook exports the scored city metrics and the hotspot summary as
// a two-sheet spreadsheet for hand-off outside the terminal.
func WriteWorkbook(path string, metrics []model.CityMetrics, hotspots []model.ClusterSummary) error {
	file := xlsx.NewFile()

	cities, err := file.AddSheet("City Metrics")
	if err != nil {
		return eris.Wrap(err, "xlsx: add city sheet")
	}
	header := cities.AddRow()
	for _, name := range []string{"city", "users", "events", "avg_success", "users_norm", "events_norm", "success_norm", "score"} {
		header.AddCell().Value = name
	}
	for _, m := range metrics {
		row := cities.AddRow()
		row.AddCell().Value = m.City
		row.AddCell().SetInt(m.Users)
		row.AddCell().SetInt(m.Events)
		row.AddCell().SetFloat(m.AvgSuccess)
		row.AddCell().SetFloat(m.UsersNorm)
		row.AddCell().SetFloat(m.EventsNorm)
		row.AddCell().SetFloat(m.SuccessNorm)
		row.AddCell().SetFloat(m.Score)
	}

	spots, err := file.AddSheet("Hotspots")
	if err != nil {
		return eris.Wrap(err, "xlsx: add hotspot sheet")
	}
	header = spots.AddRow()
	for _, name := range []string{"cluster", "events", "avg_lat", "avg_lon"} {
		header.AddCell().Value = name
	}
	for _, h := range hotspots {
		row := spots.AddRow()
		row.AddCell().SetInt(h.Cluster)
		row.AddCell().SetInt(h.Events)
		row.AddCell().SetFloat(h.AvgLat)
		row.AddCell().SetFloat(h.AvgLon)
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}

	zap.L().Info("report: wrote workbook", zap.String("path", path), zap.Int("cities", len(metrics)))
	return nil
}
