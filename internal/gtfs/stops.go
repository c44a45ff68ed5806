package gtfs

// Stop is a location where vehicles pick up or drop off riders.
type Stop struct {
	StopID             StopID              `json:"stop_id"`
	StopCode           *string             `json:"stop_code,omitempty"`
	StopName           string              `json:"stop_name"`
	StopDesc           *string             `json:"stop_desc,omitempty"`
	StopLat            float64             `json:"stop_lat"`
	StopLon            float64             `json:"stop_lon"`
	ZoneID             *string             `json:"zone_id,omitempty"`
	StopURL            *string             `json:"stop_url,omitempty"`
	LocationType       *LocationType       `json:"location_type,omitempty"`
	ParentStation      *StopID             `json:"parent_station,omitempty"`
	StopTimezone       *string             `json:"stop_timezone,omitempty"`
	WheelchairBoarding *WheelchairBoarding `json:"wheelchair_boarding,omitempty"`
	PlatformCode       *string             `json:"platform_code,omitempty"`
}

func (Stop) TableName() string { return "stops" }

func (Stop) ColumnNames() []string {
	return []string{
		"stop_id",
		"stop_code",
		"stop_name",
		"stop_desc",
		"stop_lat",
		"stop_lon",
		"zone_id",
		"stop_url",
		"location_type",
		"parent_station",
		"stop_timezone",
		"wheelchair_boarding",
		"platform_code",
	}
}

func (Stop) CreateClause() string {
	return `stop_id text primary key,
stop_code text,
stop_name text not null,
stop_desc text,
stop_lat real not null,
stop_lon real not null,
zone_id text,
stop_url text,
location_type int,
parent_station text,
stop_timezone text,
wheelchair_boarding int,
platform_code text`
}

func (s Stop) ColumnValues() []any {
	return []any{
		string(s.StopID),
		textValue(s.StopCode),
		s.StopName,
		textValue(s.StopDesc),
		s.StopLat,
		s.StopLon,
		textValue(s.ZoneID),
		textValue(s.StopURL),
		intValue(s.LocationType),
		textValue(s.ParentStation),
		textValue(s.StopTimezone),
		intValue(s.WheelchairBoarding),
		textValue(s.PlatformCode),
	}
}
