// Package output renders record sequences in a caller-chosen exchange
// format. It is agnostic to where the records came from.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Formats lists the accepted format names, for flag help text.
func Formats() []string {
	return []string{string(FormatCSV), string(FormatJSON)}
}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected %s)", s, strings.Join(Formats(), " or "))
	}
}

// Write renders records to w. CSV uses the entity's column set as the header
// with empty cells for absent values; JSON emits an array of objects with
// absent values omitted.
func Write[T gtfs.Record](w io.Writer, format Format, records []T) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, records)
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeCSV[T gtfs.Record](w io.Writer, records []T) error {
	var t T
	columns := t.ColumnNames()

	out := csv.NewWriter(w)
	if err := out.Write(columns); err != nil {
		return err
	}
	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, value := range record.ColumnValues() {
			row = append(row, formatValue(value))
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func formatValue(value any) string {
	switch value := value.(type) {
	case nil:
		return ""
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func writeJSON[T any](w io.Writer, records []T) error {
	if records == nil {
		records = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
