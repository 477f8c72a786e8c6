package rsmapper

import "strings"

// Column is one labelled value of a row. Valid is false for NULL.
type Column struct {
	Label string
	Value string
	Valid bool
}

// Row holds the columns of one cursor row in cursor order.
type Row []Column

// Lookup returns the value of the first column whose label matches name,
// ignoring case. ok is false when no column matches or the value is NULL.
func (r Row) Lookup(name string) (value string, ok bool) {
	for _, col := range r {
		if strings.EqualFold(col.Label, name) {
			return col.Value, col.Valid
		}
	}
	return "", false
}

// readRow reads the current row of c.
func readRow(c Cursor) (Row, error) {
	count, err := c.ColumnCount()
	if err != nil {
		return nil, &RowReadError{Err: err}
	}

	row := make(Row, count)
	for i := 1; i <= count; i++ {
		label, err := c.ColumnLabel(i)
		if err != nil {
			return nil, &RowReadError{Column: i, Err: err}
		}
		value, valid, err := c.String(i)
		if err != nil {
			return nil, &RowReadError{Column: i, Err: err}
		}
		row[i-1] = Column{Label: label, Value: value, Valid: valid}
	}

	return row, nil
}
