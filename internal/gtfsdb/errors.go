package gtfsdb

import "errors"

// Every failure surfaces to the immediate caller wrapped around one of these
// sentinels; nothing is retried and nothing is downgraded to a partial result.
var (
	// ErrConnection means the database file could not be opened or created.
	ErrConnection = errors.New("cannot open database")
	// ErrSchema means creating or dropping a relation failed.
	ErrSchema = errors.New("schema operation failed")
	// ErrBinding means a record's value set does not match its declared
	// column set. This is a configuration error to catch in tests.
	ErrBinding = errors.New("record does not match column set")
	// ErrConstraint means a row violated a uniqueness or not-null constraint,
	// aborting the enclosing batch.
	ErrConstraint = errors.New("constraint violated")
	// ErrDeserialize means a retrieved row could not be reconstructed into
	// the target type.
	ErrDeserialize = errors.New("cannot deserialize row")
)
