package gtfsdb

import (
	"fmt"

	"crawshaw.io/sqlite"
)

// row wraps a statement positioned on a result row with null-aware typed
// getters. Getters for required columns record the first violation; the scan
// functions surface it via Err after reading every field.
type row struct {
	stmt *sqlite.Stmt
	cols map[string]int
	err  error
}

func columnIndex(stmt *sqlite.Stmt) map[string]int {
	cols := make(map[string]int, stmt.ColumnCount())
	for i := 0; i < stmt.ColumnCount(); i++ {
		cols[stmt.ColumnName(i)] = i
	}
	return cols
}

func (r *row) isNull(name string) bool {
	i, ok := r.cols[name]
	if !ok {
		return true
	}
	return r.stmt.ColumnType(i) == sqlite.SQLITE_NULL
}

func (r *row) text(name string) string {
	if r.err != nil {
		return ""
	}
	if r.isNull(name) {
		r.err = fmt.Errorf("%w: %s is null", ErrDeserialize, name)
		return ""
	}
	return r.stmt.GetText(name)
}

func (r *row) int64(name string) int64 {
	if r.err != nil {
		return 0
	}
	if r.isNull(name) {
		r.err = fmt.Errorf("%w: %s is null", ErrDeserialize, name)
		return 0
	}
	return r.stmt.GetInt64(name)
}

func (r *row) float(name string) float64 {
	if r.err != nil {
		return 0
	}
	if r.isNull(name) {
		r.err = fmt.Errorf("%w: %s is null", ErrDeserialize, name)
		return 0
	}
	return r.stmt.GetFloat(name)
}

func (r *row) textPtr(name string) *string {
	if r.err != nil || r.isNull(name) {
		return nil
	}
	v := r.stmt.GetText(name)
	return &v
}

func (r *row) int64Ptr(name string) *int64 {
	if r.err != nil || r.isNull(name) {
		return nil
	}
	v := r.stmt.GetInt64(name)
	return &v
}

func (r *row) floatPtr(name string) *float64 {
	if r.err != nil || r.isNull(name) {
		return nil
	}
	v := r.stmt.GetFloat(name)
	return &v
}

func (r *row) Err() error { return r.err }
