// Package memstore keeps feed records in process memory behind the
// gtfs.Store interface. It exists so services and their tests can run
// without a database file; it mirrors the SQLite adapter's semantics,
// including batch atomicity and primary key uniqueness.
package memstore

import (
	"errors"
	"fmt"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

var (
	// ErrNoTable means an insert or select ran before CreateAll.
	ErrNoTable = errors.New("table does not exist")
	// ErrDuplicate means a batch contained a primary key already present.
	ErrDuplicate = errors.New("duplicate primary key")
)

// Store is the in-memory gtfs.Store adapter.
type Store struct {
	created   bool
	agencies  []gtfs.Agency
	stops     []gtfs.Stop
	routes    []gtfs.Route
	trips     []gtfs.Trip
	stopTimes []gtfs.StopTime
}

var _ gtfs.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) CreateAll() error {
	for _, table := range gtfs.AllTables() {
		if table.CreateClause() == "" {
			return fmt.Errorf("table %s has no creation clause", table.TableName())
		}
	}
	s.created = true
	return nil
}

func (s *Store) DropAll() error {
	s.created = false
	s.agencies = nil
	s.stops = nil
	s.routes = nil
	s.trips = nil
	s.stopTimes = nil
	return nil
}

func (s *Store) Close() error { return nil }

// insertUnique appends batch to existing only if no key collides, mirroring
// the all-or-nothing transaction of the SQLite adapter.
func insertUnique[T any](existing, batch []T, table string, key func(T) string) ([]T, error) {
	seen := make(map[string]bool, len(existing)+len(batch))
	for _, record := range existing {
		seen[key(record)] = true
	}
	for _, record := range batch {
		if seen[key(record)] {
			return existing, fmt.Errorf("%w: %s %q", ErrDuplicate, table, key(record))
		}
		seen[key(record)] = true
	}
	return append(existing, batch...), nil
}

func (s *Store) InsertAgencies(agencies []gtfs.Agency) error {
	if !s.created {
		return fmt.Errorf("%w: agency", ErrNoTable)
	}
	var err error
	s.agencies, err = insertUnique(s.agencies, agencies, "agency", func(a gtfs.Agency) string {
		return string(a.AgencyID)
	})
	return err
}

func (s *Store) SelectAgencies() ([]gtfs.Agency, error) {
	if !s.created {
		return nil, fmt.Errorf("%w: agency", ErrNoTable)
	}
	return append([]gtfs.Agency(nil), s.agencies...), nil
}

func (s *Store) InsertStops(stops []gtfs.Stop) error {
	if !s.created {
		return fmt.Errorf("%w: stops", ErrNoTable)
	}
	var err error
	s.stops, err = insertUnique(s.stops, stops, "stops", func(st gtfs.Stop) string {
		return string(st.StopID)
	})
	return err
}

func (s *Store) SelectStops() ([]gtfs.Stop, error) {
	if !s.created {
		return nil, fmt.Errorf("%w: stops", ErrNoTable)
	}
	return append([]gtfs.Stop(nil), s.stops...), nil
}

func (s *Store) InsertRoutes(routes []gtfs.Route) error {
	if !s.created {
		return fmt.Errorf("%w: routes", ErrNoTable)
	}
	var err error
	s.routes, err = insertUnique(s.routes, routes, "routes", func(r gtfs.Route) string {
		return string(r.RouteID)
	})
	return err
}

func (s *Store) SelectRoutes(routeID *gtfs.RouteID) ([]gtfs.Route, error) {
	if !s.created {
		return nil, fmt.Errorf("%w: routes", ErrNoTable)
	}
	if routeID == nil {
		return append([]gtfs.Route(nil), s.routes...), nil
	}
	var matched []gtfs.Route
	for _, route := range s.routes {
		if route.RouteID == *routeID {
			matched = append(matched, route)
		}
	}
	return matched, nil
}

func (s *Store) InsertTrips(trips []gtfs.Trip) error {
	if !s.created {
		return fmt.Errorf("%w: trips", ErrNoTable)
	}
	var err error
	s.trips, err = insertUnique(s.trips, trips, "trips", func(t gtfs.Trip) string {
		return string(t.TripID)
	})
	return err
}

func (s *Store) SelectTrips(routeID *gtfs.RouteID) ([]gtfs.Trip, error) {
	if !s.created {
		return nil, fmt.Errorf("%w: trips", ErrNoTable)
	}
	if routeID == nil {
		return append([]gtfs.Trip(nil), s.trips...), nil
	}
	var matched []gtfs.Trip
	for _, trip := range s.trips {
		if trip.RouteID == *routeID {
			matched = append(matched, trip)
		}
	}
	return matched, nil
}

func (s *Store) InsertStopTimes(stopTimes []gtfs.StopTime) error {
	if !s.created {
		return fmt.Errorf("%w: stop_times", ErrNoTable)
	}
	var err error
	s.stopTimes, err = insertUnique(s.stopTimes, stopTimes, "stop_times", func(st gtfs.StopTime) string {
		return fmt.Sprintf("%s/%d", st.TripID, st.StopSequence)
	})
	return err
}

func (s *Store) SelectStopTimes() ([]gtfs.StopTime, error) {
	if !s.created {
		return nil, fmt.Errorf("%w: stop_times", ErrNoTable)
	}
	return append([]gtfs.StopTime(nil), s.stopTimes...), nil
}
