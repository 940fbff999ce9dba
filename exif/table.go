package exif

import "sort"

// Table is a row-per-image, column-per-tag-name view of extracted metadata.
// A row that lacks a column simply has no entry for that key - an absent
// cell, which is distinct from an empty string value.
type Table struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// NewTable wraps a single image's tag mapping into a one-row table.
// Columns are sorted by tag name for stable display.
func NewTable(tags map[string]string) Table {
	columns := make([]string, 0, len(tags))
	row := make(map[string]string, len(tags))
	for name, value := range tags {
		columns = append(columns, name)
		row[name] = value
	}
	sort.Strings(columns)
	return Table{Columns: columns, Rows: []map[string]string{row}}
}

// Merge concatenates tables row-wise, in argument order. The merged
// column set is the union of all inputs' columns, in first-seen order.
func Merge(tables ...Table) Table {
	merged := Table{}
	seen := map[string]bool{}
	for _, t := range tables {
		for _, col := range t.Columns {
			if !seen[col] {
				seen[col] = true
				merged.Columns = append(merged.Columns, col)
			}
		}
		for _, row := range t.Rows {
			dup := make(map[string]string, len(row))
			for name, value := range row {
				dup[name] = value
			}
			merged.Rows = append(merged.Rows, dup)
		}
	}
	return merged
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Cell returns the value at (row, column) and whether the cell is present.
func (t Table) Cell(row int, column string) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	value, ok := t.Rows[row][column]
	return value, ok
}
