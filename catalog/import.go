package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ptolstoi/warcraftassets/dbc"
)

// ImportCSV stores the records of table read from r. The first row names
// the fields and must contain an ID column. It returns the number of records stored.
func (c *Catalog) ImportCSV(table dbc.DatabaseName, r io.Reader) (int, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("unable to read header: %w", err)
	}

	idCol := -1
	for i, name := range header {
		if name == dbc.FieldID {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return 0, fmt.Errorf("header has no %s column", dbc.FieldID)
	}

	n := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		id, err := strconv.ParseUint(row[idCol], 10, 32)
		if err != nil {
			return n, fmt.Errorf("line %d: invalid %s '%s'", n+2, dbc.FieldID, row[idCol])
		}

		rec := dbc.Record{
			Table:  table,
			ID:     uint32(id),
			Fields: make(map[string]string, len(header)-1),
		}
		for i, name := range header {
			if i != idCol {
				rec.Fields[name] = row[i]
			}
		}

		if err := c.Put(rec); err != nil {
			return n, err
		}
		n++
	}
}
