package rsmapper

import (
	"database/sql"
	"fmt"
)

var _ Cursor = (*SqlCursor)(nil)

// SqlCursor reads a *sql.Rows result set. Values are scanned as driver values
// and rendered as strings, so any registered driver can back it.
type SqlCursor struct {
	rows    *sql.Rows
	columns []string
	values  []any
	loaded  bool
}

func NewSqlCursor(rows *sql.Rows) *SqlCursor {
	return &SqlCursor{
		rows: rows,
	}
}

func (s *SqlCursor) Next() bool {
	s.values, s.loaded = nil, false
	return s.rows.Next()
}

func (s *SqlCursor) Err() error {
	return s.rows.Err()
}

func (s *SqlCursor) ColumnCount() (int, error) {
	if s.columns == nil {
		columns, err := s.rows.Columns()
		if err != nil {
			return 0, err
		}
		s.columns = columns
	}
	return len(s.columns), nil
}

func (s *SqlCursor) ColumnLabel(i int) (string, error) {
	count, err := s.ColumnCount()
	if err != nil {
		return "", err
	}
	if i < 1 || i > count {
		return "", fmt.Errorf("column index %d out of range [1, %d]", i, count)
	}
	return s.columns[i-1], nil
}

func (s *SqlCursor) String(i int) (string, bool, error) {
	if !s.loaded {
		if err := s.scan(); err != nil {
			return "", false, err
		}
	}
	if i < 1 || i > len(s.values) {
		return "", false, fmt.Errorf("column index %d out of range [1, %d]", i, len(s.values))
	}
	return formatValue(s.values[i-1])
}

// scan reads the whole current row as driver values.
func (s *SqlCursor) scan() error {
	count, err := s.ColumnCount()
	if err != nil {
		return err
	}
	values := make([]any, count)
	targets := make([]any, count)
	for i := range values {
		targets[i] = &values[i]
	}
	if err := s.rows.Scan(targets...); err != nil {
		return err
	}
	s.values, s.loaded = values, true
	return nil
}

func (s *SqlCursor) Close() error {
	return s.rows.Close()
}
