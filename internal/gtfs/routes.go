package gtfs

// Route is a group of trips displayed to riders as a single service.
type Route struct {
	RouteID        RouteID   `json:"route_id"`
	AgencyID       AgencyID  `json:"agency_id"`
	RouteShortName *string   `json:"route_short_name,omitempty"`
	RouteLongName  *string   `json:"route_long_name,omitempty"`
	RouteDesc      *string   `json:"route_desc,omitempty"`
	RouteType      RouteType `json:"route_type"`
	RouteURL       *string   `json:"route_url,omitempty"`
	RouteColor     *string   `json:"route_color,omitempty"`
	RouteTextColor *string   `json:"route_text_color,omitempty"`
	RouteSortOrder *int64    `json:"route_sort_order,omitempty"`
}

func (Route) TableName() string { return "routes" }

func (Route) ColumnNames() []string {
	return []string{
		"route_id",
		"agency_id",
		"route_short_name",
		"route_long_name",
		"route_desc",
		"route_type",
		"route_url",
		"route_color",
		"route_text_color",
		"route_sort_order",
	}
}

func (Route) CreateClause() string {
	return `route_id text primary key,
agency_id text not null,
route_short_name text,
route_long_name text,
route_desc text,
route_type int not null,
route_url text,
route_color text,
route_text_color text,
route_sort_order int`
}

func (r Route) ColumnValues() []any {
	return []any{
		string(r.RouteID),
		string(r.AgencyID),
		textValue(r.RouteShortName),
		textValue(r.RouteLongName),
		textValue(r.RouteDesc),
		int64(r.RouteType),
		textValue(r.RouteURL),
		textValue(r.RouteColor),
		textValue(r.RouteTextColor),
		intValue(r.RouteSortOrder),
	}
}
