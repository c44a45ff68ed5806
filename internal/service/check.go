package service

import "fmt"

// CheckReferences reports rows that reference identifiers absent from the
// store: routes to agency, trips to routes, stop times to trips and stops,
// and stops to their parent station. The storage layer declares no foreign
// keys, so this is the only place dangling references surface.
func (s *Service) CheckReferences() ([]string, error) {
	var issues []string

	agencies, err := s.store.SelectAgencies()
	if err != nil {
		return nil, err
	}
	agencyIDs := make(map[string]bool, len(agencies))
	for _, agency := range agencies {
		agencyIDs[string(agency.AgencyID)] = true
	}

	stops, err := s.store.SelectStops()
	if err != nil {
		return nil, err
	}
	stopIDs := make(map[string]bool, len(stops))
	for _, stop := range stops {
		stopIDs[string(stop.StopID)] = true
	}
	for _, stop := range stops {
		if stop.ParentStation != nil && !stopIDs[string(*stop.ParentStation)] {
			issues = append(issues, fmt.Sprintf("%s in stops is not a valid parent_station", *stop.ParentStation))
		}
	}

	routes, err := s.store.SelectRoutes(nil)
	if err != nil {
		return nil, err
	}
	routeIDs := make(map[string]bool, len(routes))
	for _, route := range routes {
		routeIDs[string(route.RouteID)] = true
		if !agencyIDs[string(route.AgencyID)] {
			issues = append(issues, fmt.Sprintf("%s in routes is not a valid agency_id", route.AgencyID))
		}
	}

	trips, err := s.store.SelectTrips(nil)
	if err != nil {
		return nil, err
	}
	tripIDs := make(map[string]bool, len(trips))
	for _, trip := range trips {
		tripIDs[string(trip.TripID)] = true
		if !routeIDs[string(trip.RouteID)] {
			issues = append(issues, fmt.Sprintf("%s in trips is not a valid route_id", trip.RouteID))
		}
	}

	stopTimes, err := s.store.SelectStopTimes()
	if err != nil {
		return nil, err
	}
	for _, stopTime := range stopTimes {
		if !tripIDs[string(stopTime.TripID)] {
			issues = append(issues, fmt.Sprintf("%s in stop_times is not a valid trip_id", stopTime.TripID))
		}
		if !stopIDs[string(stopTime.StopID)] {
			issues = append(issues, fmt.Sprintf("%s in stop_times is not a valid stop_id", stopTime.StopID))
		}
	}

	return issues, nil
}
