package gtfscsv

import (
	"fmt"
	"strconv"
)

// record is one CSV row with header-indexed, null-aware typed getters. The
// getters record the first violation; parse functions surface it via Err
// after reading every field.
type record struct {
	index  map[string]int
	fields []string
	err    error
}

// cell returns the raw cell value, or "" when the column is missing from the
// header or the row is short.
func (r *record) cell(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r *record) text(column string) string {
	v := r.cell(column)
	if v == "" && r.err == nil {
		r.err = fmt.Errorf("missing required value for %s", column)
	}
	return v
}

func (r *record) textPtr(column string) *string {
	v := r.cell(column)
	if v == "" {
		return nil
	}
	return &v
}

func (r *record) float(column string) float64 {
	v := r.text(column)
	if r.err != nil {
		return 0
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = fmt.Errorf("%s is not a number: %q", column, v)
		return 0
	}
	return parsed
}

func (r *record) floatPtr(column string) *float64 {
	v := r.cell(column)
	if v == "" || r.err != nil {
		return nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = fmt.Errorf("%s is not a number: %q", column, v)
		return nil
	}
	return &parsed
}

func (r *record) int64(column string) int64 {
	v := r.text(column)
	if r.err != nil {
		return 0
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("%s is not an integer: %q", column, v)
		return 0
	}
	return parsed
}

func (r *record) int64Ptr(column string) *int64 {
	v := r.cell(column)
	if v == "" || r.err != nil {
		return nil
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("%s is not an integer: %q", column, v)
		return nil
	}
	return &parsed
}

func (r *record) Err() error { return r.err }
