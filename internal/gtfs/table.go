package gtfs

// Table describes how an entity type maps onto a relation: the relation's
// name, its ordered column set, and the column definitions used to create it.
// Implementations are pure metadata with no side effects.
type Table interface {
	TableName() string
	ColumnNames() []string
	// CreateClause returns the column definitions and constraints, excluding
	// the CREATE TABLE envelope. An empty clause is a configuration error.
	CreateClause() string
}

// Record is a Table whose instances can be written to the relation.
// ColumnValues returns one value per column, in ColumnNames order, normalized
// to string, int64, float64, or nil for an absent optional field.
type Record interface {
	Table
	ColumnValues() []any
}

// AllTables lists every entity type known to the schema, in feed file order.
func AllTables() []Table {
	return []Table{Agency{}, Stop{}, Route{}, Trip{}, StopTime{}}
}

func textValue[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

func intValue[T ~int | ~int64](v *T) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func floatValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
