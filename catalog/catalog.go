// Package catalog is a dbc.Registry stored in a SQLite database.
// It also caches rendered files.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/ptolstoi/warcraftassets/dbc"
)

// Catalog stores database records as (table, id, field, value) rows.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog at path. ":memory:" opens a private
// in-memory catalog.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if path == ":memory:" {
		// every connection would see its own database
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS
			record
		(
			tableName TEXT NOT NULL,
			id INTEGER NOT NULL,
			field TEXT NOT NULL,
			value TEXT,

			CONSTRAINT table_id_field UNIQUE (tableName, id, field)
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS
			record_field_value
		ON
			record (tableName, field, value)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	c := &Catalog{db: db}

	if err := c.initFileCache(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

// Close closes the catalog.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put stores rec, replacing the fields of a record with the same table and ID.
func (c *Catalog) Put(rec dbc.Record) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(`
		DELETE FROM
			record
		WHERE
			tableName = ? AND id = ?`, string(rec.Table), rec.ID)
	if err != nil {
		return err
	}

	insert := func(field string, value string) error {
		_, err := tx.Exec(`
			INSERT INTO
				record
					(
						tableName, id, field, value
					)
			VALUES
					(?, ?, ?, ?)
		`, string(rec.Table), rec.ID, field, value)
		return err
	}

	if err := insert(dbc.FieldID, strconv.FormatUint(uint64(rec.ID), 10)); err != nil {
		return err
	}

	for field, value := range rec.Fields {
		if field == dbc.FieldID {
			continue
		}
		if err := insert(field, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Lookup implements dbc.Registry. When several records match, the one with
// the lowest ID wins.
func (c *Catalog) Lookup(table dbc.DatabaseName, field string, key uint32) (dbc.Record, error) {
	row := c.db.QueryRow(`
	SELECT
		id
	FROM
		record
	WHERE
		tableName = ? AND field = ? AND value = ?
	ORDER BY
		id
	LIMIT 1`, string(table), field, strconv.FormatUint(uint64(key), 10))

	var id uint32
	err := row.Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return dbc.Record{}, fmt.Errorf("%w: no %s record with %s %d", dbc.ErrUnresolvedReference, table, field, key)
	} else if err != nil {
		return dbc.Record{}, err
	}

	return c.record(table, id)
}

func (c *Catalog) record(table dbc.DatabaseName, id uint32) (dbc.Record, error) {
	rows, err := c.db.Query(`
	SELECT
		field,
		value
	FROM
		record
	WHERE
		tableName = ? AND id = ? AND field != ?`, string(table), id, dbc.FieldID)
	if err != nil {
		return dbc.Record{}, err
	}
	defer rows.Close()

	rec := dbc.Record{
		Table:  table,
		ID:     id,
		Fields: make(map[string]string),
	}

	for rows.Next() {
		var field string
		var value sql.NullString
		if err := rows.Scan(&field, &value); err != nil {
			return dbc.Record{}, err
		}
		rec.Fields[field] = value.String
	}

	return rec, rows.Err()
}

// Count returns the number of records stored for table.
func (c *Catalog) Count(table dbc.DatabaseName) (int, error) {
	var n int
	err := c.db.QueryRow(`
	SELECT
		COUNT(*)
	FROM
		record
	WHERE
		tableName = ? AND field = ?`, string(table), dbc.FieldID).Scan(&n)
	return n, err
}
