package gtfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	lang := "en"
	locationType := LocationTypeStation
	direction := DirectionInbound
	timepoint := TimepointExact
	return []Record{
		Agency{AgencyID: "A1", AgencyName: "Metro", AgencyURL: "https://example.com", AgencyTimezone: "UTC", AgencyLang: &lang},
		Stop{StopID: "S1", StopName: "Central", StopLat: 35.0, StopLon: 139.0, LocationType: &locationType},
		Route{RouteID: "R1", AgencyID: "A1", RouteType: RouteTypeBus},
		Trip{RouteID: "R1", ServiceID: "WD", TripID: "T1", DirectionID: &direction},
		StopTime{TripID: "T1", ArrivalTime: "08:00:00", DepartureTime: "08:00:30", StopID: "S1", StopSequence: 1, Timepoint: &timepoint},
	}
}

func TestColumnArityMatchesValues(t *testing.T) {
	for _, record := range sampleRecords() {
		t.Run(record.TableName(), func(t *testing.T) {
			require.Equal(t, len(record.ColumnNames()), len(record.ColumnValues()),
				"ColumnValues must provide one value per declared column")
		})
	}
}

func TestColumnNamesUnique(t *testing.T) {
	for _, table := range AllTables() {
		t.Run(table.TableName(), func(t *testing.T) {
			seen := make(map[string]bool)
			for _, column := range table.ColumnNames() {
				assert.False(t, seen[column], "duplicate column %s", column)
				seen[column] = true
			}
		})
	}
}

func TestCreateClausesCoverEveryColumn(t *testing.T) {
	for _, table := range AllTables() {
		t.Run(table.TableName(), func(t *testing.T) {
			clause := table.CreateClause()
			require.NotEmpty(t, strings.TrimSpace(clause))
			for _, column := range table.ColumnNames() {
				assert.Contains(t, clause, column)
			}
		})
	}
}

func TestTableNamesDistinct(t *testing.T) {
	tables := AllTables()
	require.Len(t, tables, 5)
	seen := make(map[string]bool)
	for _, table := range tables {
		assert.False(t, seen[table.TableName()])
		seen[table.TableName()] = true
	}
}

func TestColumnValuesNormalized(t *testing.T) {
	for _, record := range sampleRecords() {
		t.Run(record.TableName(), func(t *testing.T) {
			for i, value := range record.ColumnValues() {
				switch value.(type) {
				case nil, string, int64, float64:
				default:
					t.Errorf("column %s has unsupported value type %T",
						record.ColumnNames()[i], value)
				}
			}
		})
	}
}

func TestEnumEncodings(t *testing.T) {
	assert.EqualValues(t, 0, DirectionOutbound)
	assert.EqualValues(t, 1, DirectionInbound)
	assert.EqualValues(t, 0, WheelchairAccessibleUnknown)
	assert.EqualValues(t, 1, WheelchairAccessibleYes)
	assert.EqualValues(t, 2, WheelchairAccessibleNo)
	assert.EqualValues(t, 0, BikesAllowedUnknown)
	assert.EqualValues(t, 1, BikesAllowedYes)
	assert.EqualValues(t, 2, BikesAllowedNo)
	assert.EqualValues(t, 3, RouteTypeBus)
	assert.EqualValues(t, 11, RouteTypeTrolleybus)
	assert.EqualValues(t, 4, LocationTypeBoardingArea)
	assert.EqualValues(t, 1, TimepointExact)
}
