package output

import (
	"strings"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

func ptr[T any](v T) *T { return &v }

func assertTextEqual(t *testing.T, expected, actual string) {
	t.Helper()
	edits := myers.ComputeEdits(span.URIFromPath("output"), expected, actual)
	if len(edits) > 0 {
		t.Errorf("\n%s", gotextdiff.ToUnified("expected", "actual", expected, edits))
	}
}

func sampleTrips() []gtfs.Trip {
	return []gtfs.Trip{
		{
			RouteID:      "R1",
			ServiceID:    "WD",
			TripID:       "T1",
			TripHeadsign: ptr("Harbor"),
			DirectionID:  ptr(gtfs.DirectionInbound),
			BikesAllowed: ptr(gtfs.BikesAllowedYes),
		},
		{RouteID: "R1", ServiceID: "WE", TripID: "T2"},
	}
}

func TestWriteCSV(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Write(&out, FormatCSV, sampleTrips()))

	expected := "route_id,service_id,trip_id,trip_headsign,trip_short_name,direction_id,block_id,shape_id,wheelchair_accessible,bikes_allowed\n" +
		"R1,WD,T1,Harbor,,1,,,,1\n" +
		"R1,WE,T2,,,,,,,\n"
	assertTextEqual(t, expected, out.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Write(&out, FormatCSV, []gtfs.Trip(nil)))
	assertTextEqual(t, "route_id,service_id,trip_id,trip_headsign,trip_short_name,direction_id,block_id,shape_id,wheelchair_accessible,bikes_allowed\n", out.String())
}

func TestWriteCSVFloats(t *testing.T) {
	var out strings.Builder
	stops := []gtfs.Stop{{StopID: "S1", StopName: "Central", StopLat: 35.6812, StopLon: 139.7671}}
	require.NoError(t, Write(&out, FormatCSV, stops))

	assert.Contains(t, out.String(), "35.6812,139.7671")
}

func TestWriteJSON(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Write(&out, FormatJSON, sampleTrips()))

	expected := `[
  {
    "route_id": "R1",
    "service_id": "WD",
    "trip_id": "T1",
    "trip_headsign": "Harbor",
    "direction_id": 1,
    "bikes_allowed": 1
  },
  {
    "route_id": "R1",
    "service_id": "WE",
    "trip_id": "T2"
  }
]
`
	assertTextEqual(t, expected, out.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Write(&out, FormatJSON, []gtfs.Trip(nil)))
	assertTextEqual(t, "[]\n", out.String())
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	format, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}
