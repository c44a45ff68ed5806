// Package service implements the application use cases over the storage
// capability: the destructive rebuild pipeline, typed queries, geographic
// stop filtering, and cross-entity reference checking.
package service

import (
	"fmt"
	"log/slog"

	"github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

// FeedReader supplies already-parsed, already-validated record batches from
// a feed source.
type FeedReader interface {
	Agencies() ([]gtfs.Agency, error)
	Stops() ([]gtfs.Stop, error)
	Routes() ([]gtfs.Route, error)
	Trips() ([]gtfs.Trip, error)
	StopTimes() ([]gtfs.StopTime, error)
}

// Service runs use cases against any gtfs.Store.
type Service struct {
	store gtfs.Store
}

func New(store gtfs.Store) *Service {
	return &Service{store: store}
}

// Rebuild destructively re-imports the feed: drop every relation, recreate
// it, then insert each entity batch. Fails fast on the first error; rerunning
// after a failure starts over from a clean slate.
func (s *Service) Rebuild(feed FeedReader) error {
	if err := s.store.DropAll(); err != nil {
		return err
	}
	if err := s.store.CreateAll(); err != nil {
		return err
	}

	agencies, err := feed.Agencies()
	if err != nil {
		return err
	}
	if err := s.store.InsertAgencies(agencies); err != nil {
		return err
	}

	stops, err := feed.Stops()
	if err != nil {
		return err
	}
	if err := s.store.InsertStops(stops); err != nil {
		return err
	}

	routes, err := feed.Routes()
	if err != nil {
		return err
	}
	if err := s.store.InsertRoutes(routes); err != nil {
		return err
	}

	trips, err := feed.Trips()
	if err != nil {
		return err
	}
	if err := s.store.InsertTrips(trips); err != nil {
		return err
	}

	stopTimes, err := feed.StopTimes()
	if err != nil {
		return err
	}
	if err := s.store.InsertStopTimes(stopTimes); err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Imported %d agencies, %d stops, %d routes, %d trips, %d stop times",
		len(agencies), len(stops), len(routes), len(trips), len(stopTimes)))
	return nil
}

func (s *Service) Agencies() ([]gtfs.Agency, error) {
	return s.store.SelectAgencies()
}

func (s *Service) Stops() ([]gtfs.Stop, error) {
	return s.store.SelectStops()
}

// StopsWithin returns the stops whose position falls inside the GeoJSON
// feature. The filter runs over a full scan; the storage layer knows nothing
// about geometry.
func (s *Service) StopsWithin(featureJSON string) ([]gtfs.Stop, error) {
	feature, err := geojson.Parse(featureJSON, &geojson.ParseOptions{RequireValid: true})
	if err != nil {
		return nil, fmt.Errorf("parse filter feature: %w", err)
	}

	stops, err := s.store.SelectStops()
	if err != nil {
		return nil, err
	}

	var inside []gtfs.Stop
	for _, stop := range stops {
		point := geojson.NewPoint(geometry.Point{X: stop.StopLon, Y: stop.StopLat})
		if feature.Contains(point) {
			inside = append(inside, stop)
		}
	}
	slog.Info(fmt.Sprintf("%d of %d stops are inside the feature", len(inside), len(stops)))
	return inside, nil
}

func (s *Service) Routes(routeID *gtfs.RouteID) ([]gtfs.Route, error) {
	return s.store.SelectRoutes(routeID)
}

func (s *Service) Trips(routeID *gtfs.RouteID) ([]gtfs.Trip, error) {
	return s.store.SelectTrips(routeID)
}

func (s *Service) StopTimes() ([]gtfs.StopTime, error) {
	return s.store.SelectStopTimes()
}
