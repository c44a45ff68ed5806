package gtfscsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

func ptr[T any](v T) *T { return &v }

func writeFeed(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}
	return dir
}

func TestOpenRequiresDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "feed.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = Open(file)
	require.Error(t, err)
}

func TestReadsAgencies(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone,agency_lang\n" +
			"A1,City Metro,https://metro.example.com,Asia/Tokyo,ja\n" +
			"A2,Rural Bus,https://bus.example.com,UTC,\n",
	})
	feed, err := Open(dir)
	require.NoError(t, err)

	agencies, err := feed.Agencies()
	require.NoError(t, err)
	require.Len(t, agencies, 2)
	assert.Equal(t, gtfs.Agency{
		AgencyID:       "A1",
		AgencyName:     "City Metro",
		AgencyURL:      "https://metro.example.com",
		AgencyTimezone: "Asia/Tokyo",
		AgencyLang:     ptr("ja"),
	}, agencies[0])
	// Empty cells are absent, not empty strings.
	assert.Nil(t, agencies[1].AgencyLang)
}

func TestReadsStopsWithUnknownColumns(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon,location_type,custom_ext\n" +
			"S1,Central,35.6812,139.7671,1,whatever\n",
	})
	feed, err := Open(dir)
	require.NoError(t, err)

	stops, err := feed.Stops()
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, gtfs.Stop{
		StopID:       "S1",
		StopName:     "Central",
		StopLat:      35.6812,
		StopLon:      139.7671,
		LocationType: ptr(gtfs.LocationTypeStation),
	}, stops[0])
}

func TestReadsTripsShortRow(t *testing.T) {
	// Rows may omit trailing optional fields entirely.
	dir := writeFeed(t, map[string]string{
		"trips.txt": "route_id,service_id,trip_id,trip_headsign,direction_id\n" +
			"R1,WD,T1,Harbor,0\n" +
			"R1,WD,T2\n",
	})
	feed, err := Open(dir)
	require.NoError(t, err)

	trips, err := feed.Trips()
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, ptr(gtfs.DirectionOutbound), trips[0].DirectionID)
	assert.Nil(t, trips[1].TripHeadsign)
	assert.Nil(t, trips[1].DirectionID)
}

func TestReadsStopTimes(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence,shape_dist_traveled\n" +
			"T1,08:00:00,08:00:30,S1,1,0\n" +
			"T1,25:10:00,25:10:00,S2,2,1.25\n",
	})
	feed, err := Open(dir)
	require.NoError(t, err)

	stopTimes, err := feed.StopTimes()
	require.NoError(t, err)
	require.Len(t, stopTimes, 2)
	assert.Equal(t, int64(2), stopTimes[1].StopSequence)
	assert.Equal(t, ptr(1.25), stopTimes[1].ShapeDistTraveled)
	assert.Equal(t, "25:10:00", stopTimes[1].ArrivalTime)
}

func TestMissingRequiredValue(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"routes.txt": "route_id,agency_id,route_type\n" +
			"R1,A1,3\n" +
			",A1,3\n",
	})
	feed, err := Open(dir)
	require.NoError(t, err)

	_, err = feed.Routes()
	require.ErrorIs(t, err, ErrBadFeed)
	assert.Contains(t, err.Error(), "line 3")
}

func TestBadNumber(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1,Central,not-a-number,139.0\n",
	})
	feed, err := Open(dir)
	require.NoError(t, err)

	_, err = feed.Stops()
	require.ErrorIs(t, err, ErrBadFeed)
	assert.Contains(t, err.Error(), "stop_lat")
}

func TestMissingFile(t *testing.T) {
	dir := writeFeed(t, map[string]string{})
	feed, err := Open(dir)
	require.NoError(t, err)

	_, err = feed.Routes()
	require.Error(t, err)
}
