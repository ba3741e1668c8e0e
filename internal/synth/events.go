package synth

import (
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/config"
	"github.com/sells-group/location-insights/internal/model"
)

// Time-of-day bands for the mixture policy. Most activity lands in the
// evening band; the rest spreads over the extended daytime band.
const (
	eveningStart = 17
	dayStart     = 8
	bandEnd      = 23
)

// GenerateEvents emits a batch of timestamped location pings per user inside
// the trailing cfg.WindowDays window ending at ref. Output order follows
// user order, then generation order within a user.
func GenerateEvents(rng *rand.Rand, users []model.User, cfg config.Events, ref time.Time) ([]model.Event, error) {
	if cfg.MinPerUser <= 0 || cfg.MaxPerUser < cfg.MinPerUser {
		return nil, eris.Errorf("synth: event bounds invalid (min=%d max=%d)", cfg.MinPerUser, cfg.MaxPerUser)
	}

	start := ref.AddDate(0, 0, -cfg.WindowDays)

	var events []model.Event
	for _, u := range users {
		n := cfg.MinPerUser + rng.Intn(cfg.MaxPerUser-cfg.MinPerUser+1)
		for i := 0; i < n; i++ {
			day := start.AddDate(0, 0, rng.Intn(cfg.WindowDays+1))

			var hour int
			if rng.Float64() < cfg.EveningProb {
				hour = eveningStart + rng.Intn(bandEnd-eveningStart+1)
			} else {
				hour = dayStart + rng.Intn(bandEnd-dayStart+1)
			}
			minute := rng.Intn(60)

			ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, ref.Location())
			wd := mondayWeekday(ts)

			events = append(events, model.Event{
				UserID:    u.ID,
				City:      u.City,
				Lat:       u.Lat + rng.NormFloat64()*cfg.JitterSigma,
				Lon:       u.Lon + rng.NormFloat64()*cfg.JitterSigma,
				Time:      ts,
				Hour:      hour,
				Weekday:   wd,
				IsWeekend: wd >= 5,
				Cluster:   model.NoiseLabel,
			})
		}
	}

	zap.L().Info("synth: generated events",
		zap.Int("count", len(events)),
		zap.Int("users", len(users)),
		zap.Time("window_start", start),
	)
	return events, nil
}

// mondayWeekday maps Go's Sunday-first weekday to the Monday=0 .. Sunday=6
// indexing the aggregates and CSV outputs use.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
