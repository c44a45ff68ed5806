// Package gtfscsv reads a GTFS feed from a directory of flat CSV files and
// produces typed, validated record batches. Columns are matched by header
// name; unknown columns are ignored and an empty cell means absent.
package gtfscsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

// ErrBadFeed reports a feed file that cannot be parsed into records.
var ErrBadFeed = errors.New("malformed feed file")

// Feed reads records from a feed directory. The five core files (agency.txt,
// stops.txt, routes.txt, trips.txt, stop_times.txt) must all be present.
type Feed struct {
	dir string
}

func Open(dir string) (*Feed, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open feed: %s is not a directory", dir)
	}
	return &Feed{dir: dir}, nil
}

func readFile[T any](dir, name string, parse func(*record) (T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Allow variable numbers of fields

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header", ErrBadFeed, name)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}

	var records []T
	line := 1
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		line++

		rec, err := parse(&record{index: index, fields: fields})
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrBadFeed, name, line, err)
		}
		records = append(records, rec)
	}

	slog.Info(fmt.Sprintf("Read %d records from %s", len(records), name))
	return records, nil
}

func (f *Feed) Agencies() ([]gtfs.Agency, error) {
	return readFile(f.dir, "agency.txt", parseAgency)
}

func (f *Feed) Stops() ([]gtfs.Stop, error) {
	return readFile(f.dir, "stops.txt", parseStop)
}

func (f *Feed) Routes() ([]gtfs.Route, error) {
	return readFile(f.dir, "routes.txt", parseRoute)
}

func (f *Feed) Trips() ([]gtfs.Trip, error) {
	return readFile(f.dir, "trips.txt", parseTrip)
}

func (f *Feed) StopTimes() ([]gtfs.StopTime, error) {
	return readFile(f.dir, "stop_times.txt", parseStopTime)
}
