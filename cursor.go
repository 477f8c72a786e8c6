package rsmapper

// Cursor is a result set positioned before its first row.
// Column indexes are 1-based.
type Cursor interface {
	// Next advances to the next row and reports whether one is available.
	Next() bool
	// Err returns the error, if any, that stopped Next.
	Err() error
	ColumnCount() (int, error)
	ColumnLabel(i int) (string, error)
	// String returns the value of column i rendered as a string.
	// ok is false when the value is NULL.
	String(i int) (value string, ok bool, err error)
	Close() error
}
