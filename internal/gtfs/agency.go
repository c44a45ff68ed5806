package gtfs

// Agency is a transit operator publishing service in the feed.
type Agency struct {
	AgencyID       AgencyID `json:"agency_id"`
	AgencyName     string   `json:"agency_name"`
	AgencyURL      string   `json:"agency_url"`
	AgencyTimezone string   `json:"agency_timezone"`
	AgencyLang     *string  `json:"agency_lang,omitempty"`
	AgencyPhone    *string  `json:"agency_phone,omitempty"`
	AgencyFareURL  *string  `json:"agency_fare_url,omitempty"`
	AgencyEmail    *string  `json:"agency_email,omitempty"`
}

func (Agency) TableName() string { return "agency" }

func (Agency) ColumnNames() []string {
	return []string{
		"agency_id",
		"agency_name",
		"agency_url",
		"agency_timezone",
		"agency_lang",
		"agency_phone",
		"agency_fare_url",
		"agency_email",
	}
}

func (Agency) CreateClause() string {
	return `agency_id text primary key,
agency_name text not null,
agency_url text not null,
agency_timezone text not null,
agency_lang text,
agency_phone text,
agency_fare_url text,
agency_email text`
}

func (a Agency) ColumnValues() []any {
	return []any{
		string(a.AgencyID),
		a.AgencyName,
		a.AgencyURL,
		a.AgencyTimezone,
		textValue(a.AgencyLang),
		textValue(a.AgencyPhone),
		textValue(a.AgencyFareURL),
		textValue(a.AgencyEmail),
	}
}
