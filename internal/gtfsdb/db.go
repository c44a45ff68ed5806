// Package gtfsdb persists feed records in a SQLite database. It is the
// production adapter behind the gtfs.Store interface: relations are created
// from each entity's schema contract, batches are inserted atomically, and
// typed records are reconstructed on read.
package gtfsdb

import (
	"fmt"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

var openPragmas = map[string]string{
	"synchronous": "NORMAL",
}

// DB is a SQLite-backed gtfs.Store. It owns one exclusive connection for its
// lifetime; every operation blocks the calling goroutine and the handle must
// not be shared across concurrent writers.
type DB struct {
	conn *sqlite.Conn
}

var _ gtfs.Store = (*DB)(nil)

// Open opens or creates the database file at path.
func Open(path string) (*DB, error) {
	conn, err := sqlite.OpenConn(path, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnection, path, err)
	}
	for pragma, value := range openPragmas {
		if err := sqlitex.ExecTransient(conn, "PRAGMA "+pragma+" = "+value, nil); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %s: %v", ErrConnection, path, err)
		}
	}
	return &DB{conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// CreateAll creates the relation for every known entity type. Idempotent:
// relations that already exist are left alone. Creation order is free of
// referential constraints, no foreign keys are declared.
func (db *DB) CreateAll() error {
	for _, table := range gtfs.AllTables() {
		if err := createTable(db.conn, table); err != nil {
			return err
		}
	}
	return nil
}

// DropAll drops the relation for every known entity type, if present.
func (db *DB) DropAll() error {
	for _, table := range gtfs.AllTables() {
		if err := dropTable(db.conn, table); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) InsertAgencies(agencies []gtfs.Agency) error {
	return insert(db.conn, agencies)
}

func (db *DB) SelectAgencies() ([]gtfs.Agency, error) {
	return selectAll(db.conn, scanAgency)
}

func (db *DB) InsertStops(stops []gtfs.Stop) error {
	return insert(db.conn, stops)
}

func (db *DB) SelectStops() ([]gtfs.Stop, error) {
	return selectAll(db.conn, scanStop)
}

func (db *DB) InsertRoutes(routes []gtfs.Route) error {
	return insert(db.conn, routes)
}

func (db *DB) SelectRoutes(routeID *gtfs.RouteID) ([]gtfs.Route, error) {
	if routeID == nil {
		return selectAll(db.conn, scanRoute)
	}
	return selectWhere(db.conn, scanRoute, "route_id", string(*routeID))
}

func (db *DB) InsertTrips(trips []gtfs.Trip) error {
	return insert(db.conn, trips)
}

func (db *DB) SelectTrips(routeID *gtfs.RouteID) ([]gtfs.Trip, error) {
	if routeID == nil {
		return selectAll(db.conn, scanTrip)
	}
	return selectWhere(db.conn, scanTrip, "route_id", string(*routeID))
}

func (db *DB) InsertStopTimes(stopTimes []gtfs.StopTime) error {
	return insert(db.conn, stopTimes)
}

func (db *DB) SelectStopTimes() ([]gtfs.StopTime, error) {
	return selectAll(db.conn, scanStopTime)
}
