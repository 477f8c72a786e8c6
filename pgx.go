package rsmapper

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

var _ Cursor = (*PgxCursor)(nil)

// PgxCursor wraps the pgx.Rows result set in Rows
type PgxCursor struct {
	Rows pgx.Rows

	values []any
	loaded bool
}

// NewPgxCursor takes a pgx.Rows struct and returns a PgxCursor
func NewPgxCursor(rows pgx.Rows) *PgxCursor {
	return &PgxCursor{
		Rows: rows,
	}
}

func (p *PgxCursor) Next() bool {
	p.values, p.loaded = nil, false
	return p.Rows.Next()
}

func (p *PgxCursor) Err() error {
	return p.Rows.Err()
}

func (p *PgxCursor) ColumnCount() (int, error) {
	return len(p.Rows.FieldDescriptions()), nil
}

func (p *PgxCursor) ColumnLabel(i int) (string, error) {
	fieldDescriptions := p.Rows.FieldDescriptions()
	if i < 1 || i > len(fieldDescriptions) {
		return "", fmt.Errorf("column index %d out of range [1, %d]", i, len(fieldDescriptions))
	}
	return fieldDescriptions[i-1].Name, nil
}

func (p *PgxCursor) String(i int) (string, bool, error) {
	if !p.loaded {
		values, err := p.Rows.Values()
		if err != nil {
			return "", false, err
		}
		p.values, p.loaded = values, true
	}
	if i < 1 || i > len(p.values) {
		return "", false, fmt.Errorf("column index %d out of range [1, %d]", i, len(p.values))
	}
	return formatValue(p.values[i-1])
}

// Close releases the rows. pgx reports close failures through Err.
func (p *PgxCursor) Close() error {
	p.Rows.Close()
	return p.Rows.Err()
}
