// Package csv implements bulk relationship import from CSV files with
// columns Entity1, Relationship, Entity2. Rows are applied one at a time;
// a failing row is recorded and does not stop the remaining rows.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Required header columns, matched exactly.
const (
	ColumnSource       = "Entity1"
	ColumnRelationship = "Relationship"
	ColumnTarget       = "Entity2"
)

// ErrMissingColumns reports a CSV whose header lacks one of the required
// columns.
var ErrMissingColumns = fmt.Errorf("CSV must contain columns: %s, %s, %s",
	ColumnSource, ColumnRelationship, ColumnTarget)

// ApplyFunc receives one trimmed, non-empty relationship row.
type ApplyFunc func(source, relationship, target string) error

// Result reports the outcome of a bulk load. Errors holds one message per
// failed row; rows skipped for empty fields appear in neither count.
type Result struct {
	Added  int
	Errors []string
}

// Load reads CSV data from r and applies every well-formed row. The header
// must contain the three required columns (extra columns are ignored).
// A row whose three fields are not all non-empty after trimming is skipped
// silently. A row that is too short or whose apply call fails is recorded
// in Result.Errors under its 1-based data row number, and processing
// continues.
func Load(r io.Reader, apply ApplyFunc) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, ErrMissingColumns
	}

	srcIdx, relIdx, dstIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case ColumnSource:
			srcIdx = i
		case ColumnRelationship:
			relIdx = i
		case ColumnTarget:
			dstIdx = i
		}
	}
	if srcIdx < 0 || relIdx < 0 || dstIdx < 0 {
		return Result{}, ErrMissingColumns
	}

	var res Result
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}
		if isEmptyRecord(record) {
			continue
		}
		if len(record) <= srcIdx || len(record) <= relIdx || len(record) <= dstIdx {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: missing fields", row))
			continue
		}

		source := strings.TrimSpace(record[srcIdx])
		relationship := strings.TrimSpace(record[relIdx])
		target := strings.TrimSpace(record[dstIdx])
		if source == "" || relationship == "" || target == "" {
			continue
		}

		if err := apply(source, relationship, target); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}
		res.Added++
	}

	return res, nil
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
