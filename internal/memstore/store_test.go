package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

func ptr[T any](v T) *T { return &v }

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.CreateAll())
	return s
}

func TestInsertBeforeCreate(t *testing.T) {
	s := New()
	err := s.InsertTrips([]gtfs.Trip{{RouteID: "R1", ServiceID: "S1", TripID: "T1"}})
	require.ErrorIs(t, err, ErrNoTable)
}

func TestLifecycleIdempotent(t *testing.T) {
	s := New()
	for range 2 {
		require.NoError(t, s.DropAll())
		require.NoError(t, s.CreateAll())
	}
}

func TestDropClearsRecords(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.InsertAgencies([]gtfs.Agency{{AgencyID: "A1", AgencyName: "Metro", AgencyURL: "u", AgencyTimezone: "UTC"}}))

	require.NoError(t, s.DropAll())
	require.NoError(t, s.CreateAll())

	got, err := s.SelectAgencies()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRoundTrip(t *testing.T) {
	s := testStore(t)

	trips := []gtfs.Trip{
		{RouteID: "R1", ServiceID: "WD", TripID: "T1", TripHeadsign: ptr("Harbor")},
		{RouteID: "R2", ServiceID: "WD", TripID: "T2"},
	}
	require.NoError(t, s.InsertTrips(trips))

	got, err := s.SelectTrips(nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, trips, got)

	onR1, err := s.SelectTrips(ptr(gtfs.RouteID("R1")))
	require.NoError(t, err)
	assert.ElementsMatch(t, trips[:1], onR1)

	none, err := s.SelectTrips(ptr(gtfs.RouteID("R9")))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDuplicateKeyLeavesStoreUnchanged(t *testing.T) {
	s := testStore(t)

	first := []gtfs.Trip{
		{RouteID: "R1", ServiceID: "S1", TripID: "T1"},
		{RouteID: "R1", ServiceID: "S1", TripID: "T2"},
	}
	require.NoError(t, s.InsertTrips(first))

	err := s.InsertTrips([]gtfs.Trip{
		{RouteID: "R1", ServiceID: "S1", TripID: "T3"},
		{RouteID: "R1", ServiceID: "S1", TripID: "T1"},
	})
	require.ErrorIs(t, err, ErrDuplicate)

	got, err := s.SelectTrips(nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, first, got)
}

func TestStopTimeCompositeKey(t *testing.T) {
	s := testStore(t)

	stopTimes := []gtfs.StopTime{
		{TripID: "T1", ArrivalTime: "08:00:00", DepartureTime: "08:00:00", StopID: "S1", StopSequence: 1},
		{TripID: "T1", ArrivalTime: "08:05:00", DepartureTime: "08:05:00", StopID: "S2", StopSequence: 2},
	}
	require.NoError(t, s.InsertStopTimes(stopTimes))

	err := s.InsertStopTimes([]gtfs.StopTime{
		{TripID: "T1", ArrivalTime: "08:10:00", DepartureTime: "08:10:00", StopID: "S3", StopSequence: 2},
	})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestInsertEmptyBatch(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.InsertStops(nil))

	got, err := s.SelectStops()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectCopiesState(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.InsertRoutes([]gtfs.Route{{RouteID: "R1", AgencyID: "A1", RouteType: gtfs.RouteTypeBus}}))

	got, err := s.SelectRoutes(nil)
	require.NoError(t, err)
	got[0].RouteID = "mutated"

	again, err := s.SelectRoutes(nil)
	require.NoError(t, err)
	assert.Equal(t, gtfs.RouteID("R1"), again[0].RouteID)
}
