package gtfs

// Store is the capability a backing store must provide: schema lifecycle,
// batched inserts, and typed selects per entity. Application services depend
// on this interface only, so an alternative backing store can be substituted
// without touching callers.
//
// SelectRoutes and SelectTrips take an optional route filter; passing nil
// selects every row. The other entities are full-scan only.
type Store interface {
	CreateAll() error
	DropAll() error

	InsertAgencies(agencies []Agency) error
	SelectAgencies() ([]Agency, error)

	InsertStops(stops []Stop) error
	SelectStops() ([]Stop, error)

	InsertRoutes(routes []Route) error
	SelectRoutes(routeID *RouteID) ([]Route, error)

	InsertTrips(trips []Trip) error
	SelectTrips(routeID *RouteID) ([]Trip, error)

	InsertStopTimes(stopTimes []StopTime) error
	SelectStopTimes() ([]StopTime, error)

	Close() error
}
