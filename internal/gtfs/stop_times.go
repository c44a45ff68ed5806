package gtfs

// StopTime records a vehicle arriving at and departing from a stop during a
// trip. Times are kept in the feed's HH:MM:SS notation, which may exceed
// 24:00:00 for service past midnight.
type StopTime struct {
	TripID            TripID       `json:"trip_id"`
	ArrivalTime       string       `json:"arrival_time"`
	DepartureTime     string       `json:"departure_time"`
	StopID            StopID       `json:"stop_id"`
	StopSequence      int64        `json:"stop_sequence"`
	StopHeadsign      *string      `json:"stop_headsign,omitempty"`
	PickupType        *PickupType  `json:"pickup_type,omitempty"`
	DropOffType       *DropOffType `json:"drop_off_type,omitempty"`
	ShapeDistTraveled *float64     `json:"shape_dist_traveled,omitempty"`
	Timepoint         *Timepoint   `json:"timepoint,omitempty"`
}

func (StopTime) TableName() string { return "stop_times" }

func (StopTime) ColumnNames() []string {
	return []string{
		"trip_id",
		"arrival_time",
		"departure_time",
		"stop_id",
		"stop_sequence",
		"stop_headsign",
		"pickup_type",
		"drop_off_type",
		"shape_dist_traveled",
		"timepoint",
	}
}

func (StopTime) CreateClause() string {
	return `trip_id text not null,
arrival_time text not null,
departure_time text not null,
stop_id text not null,
stop_sequence int not null,
stop_headsign text,
pickup_type int,
drop_off_type int,
shape_dist_traveled real,
timepoint int,
primary key (trip_id, stop_sequence)`
}

func (st StopTime) ColumnValues() []any {
	return []any{
		string(st.TripID),
		st.ArrivalTime,
		st.DepartureTime,
		string(st.StopID),
		st.StopSequence,
		textValue(st.StopHeadsign),
		intValue(st.PickupType),
		intValue(st.DropOffType),
		floatValue(st.ShapeDistTraveled),
		intValue(st.Timepoint),
	}
}
