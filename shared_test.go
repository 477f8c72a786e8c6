package rsmapper_test

import (
	"errors"
	"math/big"
	"time"
)

type User struct {
	ID      int       `db:"id"`
	Name    string    `db:"name"`
	Created time.Time `db:"created"`
}

type Account struct {
	ID       int64 `db:"account_id"`
	Username string
	Active   bool
	Level    int8
	Rank     int16
	Visits   int
	Initial  rune      `db:",char"`
	Ratio    float32   `db:"ratio"`
	Score    float64   `db:"score"`
	Born     time.Time `db:"born,date"`
	Wakes    time.Time `db:"wakes,time"`
	Updated  time.Time `db:"updated,datetime"`
	Seen     time.Time `db:"seen,timestamp"`
	Nickname *string   `db:"nickname"`
	Note     string    `db:"-"`
}

type Ledger struct {
	ID       int       `db:"id"`
	BadCount big.Float `db:"bad_count"`
}

type Status string

type Ticket struct {
	ID     int64  `db:"id"`
	Status Status `db:"status"`
	Owner  *int   `db:"owner"`
}

var setupQueries = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		created TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE tickets (
		id INTEGER PRIMARY KEY,
		status TEXT NOT NULL,
		owner INTEGER
	)`,
	`INSERT INTO users (id, name, created)
	VALUES (1, 'Ada', '2024-01-05 10:15:00'), (2, 'Grace', '2023-12-09 08:00:00')`,
	`INSERT INTO tickets (id, status, owner) VALUES (1, 'open', 2), (2, 'closed', NULL)`,
}

var testCases = []struct {
	name     string
	query    string
	expected any
}{
	{
		name:  "users",
		query: `SELECT id, name, created FROM users ORDER BY id`,
		expected: []User{
			{ID: 1, Name: "Ada", Created: time.Date(2024, 1, 5, 10, 15, 0, 0, time.UTC)},
			{ID: 2, Name: "Grace", Created: time.Date(2023, 12, 9, 8, 0, 0, 0, time.UTC)},
		},
	},
	{
		name:  "aliased_labels",
		query: `SELECT id AS "ID", name AS "NAME" FROM users ORDER BY id`,
		expected: []User{
			{ID: 1, Name: "Ada"},
			{ID: 2, Name: "Grace"},
		},
	},
	{
		name:  "nullable_column",
		query: `SELECT id, status, owner FROM tickets ORDER BY id`,
		expected: []Ticket{
			{ID: 1, Status: "open", Owner: toPtr(2)},
			{ID: 2, Status: "closed"},
		},
	},
}

func toPtr[T any](val T) *T {
	return &val
}

// fakeCursor serves rows from memory. A nil cell is NULL.
type fakeCursor struct {
	labels []string
	rows   [][]any
	pos    int

	nextErr   error
	valueErr  error
	closeErr  error
	closeHits int
}

func newFakeCursor(labels []string, rows ...[]any) *fakeCursor {
	return &fakeCursor{labels: labels, rows: rows}
}

func (c *fakeCursor) Next() bool {
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Err() error {
	return c.nextErr
}

func (c *fakeCursor) ColumnCount() (int, error) {
	return len(c.labels), nil
}

func (c *fakeCursor) ColumnLabel(i int) (string, error) {
	if i < 1 || i > len(c.labels) {
		return "", errors.New("column out of range")
	}
	return c.labels[i-1], nil
}

func (c *fakeCursor) String(i int) (string, bool, error) {
	if c.valueErr != nil {
		return "", false, c.valueErr
	}
	v := c.rows[c.pos-1][i-1]
	if v == nil {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (c *fakeCursor) Close() error {
	c.closeHits++
	return c.closeErr
}
