package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/location-insights/internal/model"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteUsersCSV(t *testing.T) {
	users := []model.User{
		{ID: "U0001", City: "Pune", Lat: 18.52, Lon: 73.85, Timezone: "Asia/Kolkata", MatchSuccess: 0.61},
		{ID: "U0002", City: "Delhi", Lat: 28.7, Lon: 77.1, Timezone: "Asia/Kolkata", MatchSuccess: 0.43},
	}
	path := filepath.Join(t.TempDir(), "users_geo.csv")
	require.NoError(t, WriteUsersCSV(path, users))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"user_id", "city", "lat", "lon", "timezone", "user_match_success"}, rows[0])
	assert.Equal(t, []string{"U0001", "Pune", "18.52", "73.85", "Asia/Kolkata", "0.61"}, rows[1])
}

func TestWriteEventsCSV(t *testing.T) {
	ts := time.Date(2026, 8, 22, 19, 30, 0, 0, time.UTC)
	events := []model.Event{
		{UserID: "U0001", City: "Pune", Lat: 18.5, Lon: 73.8, Time: ts, Hour: 19, Weekday: 5, IsWeekend: true},
	}
	path := filepath.Join(t.TempDir(), "events_geo.csv")
	require.NoError(t, WriteEventsCSV(path, events))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"user_id", "city", "lat", "lon", "event_time", "hour", "weekday", "is_weekend"}, rows[0])
	assert.Equal(t, []string{"U0001", "Pune", "18.5", "73.8", "2026-08-22 19:30:00", "19", "5", "1"}, rows[1])
}

func TestWriteCSV_ByteIdenticalAcrossRuns(t *testing.T) {
	users := []model.User{
		{ID: "U0001", City: "Pune", Lat: 18.5234567891, Lon: 73.8512345678, Timezone: "Asia/Kolkata", MatchSuccess: 0.6123456789},
	}
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.csv")
	pathB := filepath.Join(dir, "b.csv")
	require.NoError(t, WriteUsersCSV(pathA, users))
	require.NoError(t, WriteUsersCSV(pathB, users))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
