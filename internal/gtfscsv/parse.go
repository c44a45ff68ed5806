package gtfscsv

import "github.com/openmobility/gtfsdb/internal/gtfs"

func idPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func enumPtr[T ~int](n *int64) *T {
	if n == nil {
		return nil
	}
	v := T(*n)
	return &v
}

func parseAgency(r *record) (gtfs.Agency, error) {
	agency := gtfs.Agency{
		AgencyID:       gtfs.AgencyID(r.text("agency_id")),
		AgencyName:     r.text("agency_name"),
		AgencyURL:      r.text("agency_url"),
		AgencyTimezone: r.text("agency_timezone"),
		AgencyLang:     r.textPtr("agency_lang"),
		AgencyPhone:    r.textPtr("agency_phone"),
		AgencyFareURL:  r.textPtr("agency_fare_url"),
		AgencyEmail:    r.textPtr("agency_email"),
	}
	return agency, r.Err()
}

func parseStop(r *record) (gtfs.Stop, error) {
	stop := gtfs.Stop{
		StopID:             gtfs.StopID(r.text("stop_id")),
		StopCode:           r.textPtr("stop_code"),
		StopName:           r.text("stop_name"),
		StopDesc:           r.textPtr("stop_desc"),
		StopLat:            r.float("stop_lat"),
		StopLon:            r.float("stop_lon"),
		ZoneID:             r.textPtr("zone_id"),
		StopURL:            r.textPtr("stop_url"),
		LocationType:       enumPtr[gtfs.LocationType](r.int64Ptr("location_type")),
		ParentStation:      idPtr[gtfs.StopID](r.textPtr("parent_station")),
		StopTimezone:       r.textPtr("stop_timezone"),
		WheelchairBoarding: enumPtr[gtfs.WheelchairBoarding](r.int64Ptr("wheelchair_boarding")),
		PlatformCode:       r.textPtr("platform_code"),
	}
	return stop, r.Err()
}

func parseRoute(r *record) (gtfs.Route, error) {
	route := gtfs.Route{
		RouteID:        gtfs.RouteID(r.text("route_id")),
		AgencyID:       gtfs.AgencyID(r.text("agency_id")),
		RouteShortName: r.textPtr("route_short_name"),
		RouteLongName:  r.textPtr("route_long_name"),
		RouteDesc:      r.textPtr("route_desc"),
		RouteType:      gtfs.RouteType(r.int64("route_type")),
		RouteURL:       r.textPtr("route_url"),
		RouteColor:     r.textPtr("route_color"),
		RouteTextColor: r.textPtr("route_text_color"),
		RouteSortOrder: r.int64Ptr("route_sort_order"),
	}
	return route, r.Err()
}

func parseTrip(r *record) (gtfs.Trip, error) {
	trip := gtfs.Trip{
		RouteID:              gtfs.RouteID(r.text("route_id")),
		ServiceID:            gtfs.ServiceID(r.text("service_id")),
		TripID:               gtfs.TripID(r.text("trip_id")),
		TripHeadsign:         r.textPtr("trip_headsign"),
		TripShortName:        r.textPtr("trip_short_name"),
		DirectionID:          enumPtr[gtfs.Direction](r.int64Ptr("direction_id")),
		BlockID:              r.textPtr("block_id"),
		ShapeID:              r.textPtr("shape_id"),
		WheelchairAccessible: enumPtr[gtfs.WheelchairAccessible](r.int64Ptr("wheelchair_accessible")),
		BikesAllowed:         enumPtr[gtfs.BikesAllowed](r.int64Ptr("bikes_allowed")),
	}
	return trip, r.Err()
}

func parseStopTime(r *record) (gtfs.StopTime, error) {
	stopTime := gtfs.StopTime{
		TripID:            gtfs.TripID(r.text("trip_id")),
		ArrivalTime:       r.text("arrival_time"),
		DepartureTime:     r.text("departure_time"),
		StopID:            gtfs.StopID(r.text("stop_id")),
		StopSequence:      r.int64("stop_sequence"),
		StopHeadsign:      r.textPtr("stop_headsign"),
		PickupType:        enumPtr[gtfs.PickupType](r.int64Ptr("pickup_type")),
		DropOffType:       enumPtr[gtfs.DropOffType](r.int64Ptr("drop_off_type")),
		ShapeDistTraveled: r.floatPtr("shape_dist_traveled"),
		Timepoint:         enumPtr[gtfs.Timepoint](r.int64Ptr("timepoint")),
	}
	return stopTime, r.Err()
}
