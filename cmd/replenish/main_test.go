package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"1:7", " 2:14:3.5 "})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 7, items[0].ReferenceDays)
	assert.Nil(t, items[0].CurrentStock)

	require.NotNil(t, items[1].CurrentStock)
	assert.Equal(t, 3.5, *items[1].CurrentStock)

	for _, bad := range []string{"1", "1:2:3:4", "x:7", "1:y", "1:7:z"} {
		_, err := parseItems([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRunAgainstSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replenish.db")
	db, err := sqlx.Connect("sqlite3", "file:"+path)
	require.NoError(t, err)
	db.MustExec(`
		CREATE TABLE products (id INTEGER PRIMARY KEY, name TEXT, description TEXT, unit TEXT,
			code TEXT, specification TEXT, current_stock REAL);
		CREATE TABLE sales (id INTEGER PRIMARY KEY, product_id INTEGER, date DATE, quantity REAL);
		CREATE TABLE arrivals (id INTEGER PRIMARY KEY, product_id INTEGER, product_code TEXT, product_name TEXT,
			order_date DATE, expected_date DATE, quantity REAL, status TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP);
		INSERT INTO products VALUES (1, 'Rice', 'T+5', 'bag', 'P-001', '', 4);
		INSERT INTO sales (product_id, date, quantity) VALUES
			(1, '2024-03-07', 3), (1, '2024-03-08', 5), (1, '2024-03-09', 4);
	`)
	require.NoError(t, db.Close())

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ExitErrHandler = func(*cli.Context, error) {}

	err = app.Run([]string{"replenish",
		"--db-driver", "sqlite3",
		"--db-url", "file:" + path,
		"--order-date", "2024-03-10T02:00:00+08:00",
		"--item", "1:3",
		"--item", "9:3",
		"--output", "json",
	})
	require.NoError(t, err)

	var report domain.ReorderReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	require.Len(t, report.Results, 1)
	result := report.Results[0]
	assert.Equal(t, domain.OutcomeReplenish, result.Outcome)
	assert.Equal(t, 8.0, result.OrderQty) // median 4 * 3 days - stored stock 4
	assert.Equal(t, "2024-03-15", result.ExpectedDate.String())

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, int64(9), report.Skipped[0].ProductID)
}

func TestRunRejectsBadOutput(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"replenish", "--item", "1:3", "--output", "xml"})
	assert.Error(t, err)
}
