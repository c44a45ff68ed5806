package gtfs

// Trip is one journey of a vehicle along a route on a service day.
type Trip struct {
	RouteID              RouteID               `json:"route_id"`
	ServiceID            ServiceID             `json:"service_id"`
	TripID               TripID                `json:"trip_id"`
	TripHeadsign         *string               `json:"trip_headsign,omitempty"`
	TripShortName        *string               `json:"trip_short_name,omitempty"`
	DirectionID          *Direction            `json:"direction_id,omitempty"`
	BlockID              *string               `json:"block_id,omitempty"`
	ShapeID              *string               `json:"shape_id,omitempty"`
	WheelchairAccessible *WheelchairAccessible `json:"wheelchair_accessible,omitempty"`
	BikesAllowed         *BikesAllowed         `json:"bikes_allowed,omitempty"`
}

func (Trip) TableName() string { return "trips" }

func (Trip) ColumnNames() []string {
	return []string{
		"route_id",
		"service_id",
		"trip_id",
		"trip_headsign",
		"trip_short_name",
		"direction_id",
		"block_id",
		"shape_id",
		"wheelchair_accessible",
		"bikes_allowed",
	}
}

func (Trip) CreateClause() string {
	return `route_id text not null,
service_id text not null,
trip_id text primary key,
trip_headsign text,
trip_short_name text,
direction_id int,
block_id text,
shape_id text,
wheelchair_accessible int,
bikes_allowed int`
}

func (t Trip) ColumnValues() []any {
	return []any{
		string(t.RouteID),
		string(t.ServiceID),
		string(t.TripID),
		textValue(t.TripHeadsign),
		textValue(t.TripShortName),
		intValue(t.DirectionID),
		textValue(t.BlockID),
		textValue(t.ShapeID),
		intValue(t.WheelchairAccessible),
		intValue(t.BikesAllowed),
	}
}
