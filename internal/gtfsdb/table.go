package gtfsdb

import (
	"fmt"
	"log/slog"
	"strings"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"

	"github.com/openmobility/gtfsdb/internal/gtfs"
)

func createTable(conn *sqlite.Conn, table gtfs.Table) error {
	clause := strings.TrimSpace(table.CreateClause())
	if clause == "" {
		return fmt.Errorf("%w: table %s has no creation clause", ErrSchema, table.TableName())
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table.TableName(), clause)
	if err := sqlitex.ExecTransient(conn, query, nil); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrSchema, table.TableName(), err)
	}
	slog.Debug("Created table " + table.TableName())
	return nil
}

func dropTable(conn *sqlite.Conn, table gtfs.Table) error {
	query := "DROP TABLE IF EXISTS " + table.TableName()
	if err := sqlitex.ExecTransient(conn, query, nil); err != nil {
		return fmt.Errorf("%w: drop %s: %v", ErrSchema, table.TableName(), err)
	}
	slog.Debug("Dropped table " + table.TableName())
	return nil
}

// insert writes a homogeneous batch in a single transaction. Any failure
// rolls the whole batch back and surfaces the first error; on success there
// is exactly one commit. An empty batch commits an empty transaction.
func insert[T gtfs.Record](conn *sqlite.Conn, records []T) (err error) {
	defer sqlitex.Save(conn)(&err)

	var t T
	cols := t.ColumnNames()
	args := make([]string, len(cols))
	for i := range args {
		args[i] = fmt.Sprintf("?%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.TableName(), strings.Join(cols, ", "), strings.Join(args, ", "))

	stmt, err := conn.Prepare(query)
	if err != nil {
		return fmt.Errorf("%w: insert into %s: %v", ErrSchema, t.TableName(), err)
	}

	slog.Debug(fmt.Sprintf("Inserting %d records into %s", len(records), t.TableName()))
	for _, record := range records {
		values := record.ColumnValues()
		if len(values) != len(cols) {
			return fmt.Errorf("%w: %s declares %d columns but record has %d values",
				ErrBinding, t.TableName(), len(cols), len(values))
		}

		if err := stmt.Reset(); err != nil {
			return err
		}
		if err := stmt.ClearBindings(); err != nil {
			return err
		}
		for i, value := range values {
			if err := bindValue(stmt, i+1, value); err != nil {
				return fmt.Errorf("insert into %s, column %s: %w", t.TableName(), cols[i], err)
			}
		}

		if _, err := stmt.Step(); err != nil {
			return classifyStepError(t.TableName(), err)
		}
	}
	return nil
}

func bindValue(stmt *sqlite.Stmt, param int, value any) error {
	switch value := value.(type) {
	case nil:
		stmt.BindNull(param)
	case string:
		stmt.BindText(param, value)
	case int64:
		stmt.BindInt64(param, value)
	case float64:
		stmt.BindFloat(param, value)
	default:
		return fmt.Errorf("%w: unsupported value type %T", ErrBinding, value)
	}
	return nil
}

func classifyStepError(table string, err error) error {
	switch sqlite.ErrCode(err) {
	case sqlite.SQLITE_CONSTRAINT,
		sqlite.SQLITE_CONSTRAINT_PRIMARYKEY,
		sqlite.SQLITE_CONSTRAINT_UNIQUE,
		sqlite.SQLITE_CONSTRAINT_NOTNULL,
		sqlite.SQLITE_CONSTRAINT_CHECK:
		return fmt.Errorf("%w: insert into %s: %v", ErrConstraint, table, err)
	}
	return fmt.Errorf("insert into %s: %w", table, err)
}

// selectAll streams every row of T's relation through scan. A row that fails
// to scan aborts the whole read; partial result sets are never returned.
func selectAll[T gtfs.Record](conn *sqlite.Conn, scan func(*row) (T, error)) ([]T, error) {
	var t T
	query := "SELECT * FROM " + t.TableName()
	return selectRows(conn, t.TableName(), query, scan)
}

// selectWhere is the filtered variant of selectAll for the entities that
// expose a keyed lookup.
func selectWhere[T gtfs.Record](conn *sqlite.Conn, scan func(*row) (T, error), column, key string) ([]T, error) {
	var t T
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = ?1", t.TableName(), column)
	return selectRows(conn, t.TableName(), query, scan, key)
}

func selectRows[T any](conn *sqlite.Conn, table, query string, scan func(*row) (T, error), args ...any) ([]T, error) {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("%w: select from %s: %v", ErrSchema, table, err)
	}
	defer func() { _ = stmt.Reset() }()

	if err := stmt.Reset(); err != nil {
		return nil, err
	}
	if err := stmt.ClearBindings(); err != nil {
		return nil, err
	}
	for i, arg := range args {
		if err := bindValue(stmt, i+1, arg); err != nil {
			return nil, err
		}
	}

	var records []T
	var cols map[string]int
	for {
		rowReturned, err := stmt.Step()
		if err != nil {
			return nil, fmt.Errorf("select from %s: %w", table, err)
		}
		if !rowReturned {
			break
		}

		if cols == nil {
			cols = columnIndex(stmt)
		}
		record, err := scan(&row{stmt: stmt, cols: cols})
		if err != nil {
			return nil, fmt.Errorf("select from %s: %w", table, err)
		}
		records = append(records, record)
	}
	return records, nil
}
