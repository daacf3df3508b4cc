package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"district-sim/config"
)

const (
	// ColumnGeoname holds the district identifier
	ColumnGeoname = "GEONAME"
	// ColumnPercent holds the percentage estimate
	ColumnPercent = "PCT_ESTIMATE"

	// MaxPercent is the largest estimate accepted; anything above is a sentinel
	MaxPercent = 100.0
)

/*
Outcome is the result of loading one source table.
*/
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

/*
DropReason explains why a row was discarded.
*/
type DropReason int

const (
	DropUnparseable DropReason = iota
	DropOutOfRange
	DropShortRow
	DropEmptyName
)

func (r DropReason) String() string {
	switch r {
	case DropUnparseable:
		return "unparseable estimate"
	case DropOutOfRange:
		return "estimate out of range"
	case DropShortRow:
		return "short row"
	case DropEmptyName:
		return "empty geoname"
	default:
		return "unknown"
	}
}

/*
RowDrop records a discarded row. Line is the 1-based line of the record in the file.
*/
type RowDrop struct {
	Line   int
	Value  string
	Reason DropReason
}

/*
Table is the parsed content of one (state, category) source file.
*/
type Table struct {
	Path     string
	Category config.Category
	Outcome  Outcome
	Rows     []StatRow
	Dropped  []RowDrop
}

/*
LoadTable reads the table at path and keeps the rows with a valid estimate.

A missing file is not an error: the returned table has OutcomeNotFound.
Other I/O failures and missing required columns are returned as errors.
*/
func LoadTable(path string, category config.Category) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Table{Path: path, Category: category, Outcome: OutcomeNotFound}, nil
		}
		return nil, err
	}
	defer file.Close()

	table, err := ReadTable(file, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	table.Path = path
	return table, nil
}

/*
ReadTable parses CSV data with GEONAME and PCT_ESTIMATE columns.

Estimates are coerced to float64. Rows with an empty GEONAME, or whose estimate
cannot be parsed, is NaN, is infinite or is greater than MaxPercent, are dropped
and recorded in Table.Dropped.
*/
func ReadTable(r io.Reader, category config.Category) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty table", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}

	geoIdx, pctIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnGeoname:
			geoIdx = i
		case ColumnPercent:
			pctIdx = i
		}
	}
	if geoIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnGeoname)
	}
	if pctIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnPercent)
	}

	table := &Table{Category: category, Outcome: OutcomeFound}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		if geoIdx >= len(record) || pctIdx >= len(record) {
			table.Dropped = append(table.Dropped, RowDrop{Line: line, Reason: DropShortRow})
			continue
		}

		if record[geoIdx] == "" {
			table.Dropped = append(table.Dropped, RowDrop{Line: line, Value: record[pctIdx], Reason: DropEmptyName})
			continue
		}

		raw := record[pctIdx]
		value, ok := parseEstimate(raw)
		if !ok {
			table.Dropped = append(table.Dropped, RowDrop{Line: line, Value: raw, Reason: DropUnparseable})
			continue
		}
		if value > MaxPercent || math.IsInf(value, 0) {
			table.Dropped = append(table.Dropped, RowDrop{Line: line, Value: raw, Reason: DropOutOfRange})
			continue
		}

		table.Rows = append(table.Rows, StatRow{
			Geoname:  record[geoIdx],
			Category: category,
			Percent:  value,
		})
	}

	for _, drop := range table.Dropped {
		log.WithFields(log.Fields{
			"category": category,
			"line":     drop.Line,
			"value":    drop.Value,
		}).Debug("dropped row: ", drop.Reason)
	}

	return table, nil
}

// parseEstimate reports false for values that do not coerce to a number.
func parseEstimate(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}
