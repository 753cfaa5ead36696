package engine

import (
	"errors"
	"fmt"
)

// Lookup and selection failures. Callers match these with errors.Is.
var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrValueAbsent    = errors.New("value absent")
	ErrYearOutOfRange = errors.New("year out of range")
)

// Table is a rectangular grid keyed by string row and column labels.
// Cells carry a presence mask: a cell the source never provided stays
// absent instead of becoming a zero. Tables are built once by the
// loader and never mutated afterwards.
type Table struct {
	rowKeys  []string
	colKeys  []string
	rowIndex map[string]int
	colIndex map[string]int
	cells    [][]float64
	present  [][]bool
}

// NewTable allocates an empty table with the given axes. Every cell
// starts absent. Duplicate keys on either axis are rejected: a repeated
// row key would make lookups ambiguous for every later consumer.
func NewTable(rowKeys, colKeys []string) (*Table, error) {
	t := &Table{
		rowKeys:  append([]string(nil), rowKeys...),
		colKeys:  append([]string(nil), colKeys...),
		rowIndex: make(map[string]int, len(rowKeys)),
		colIndex: make(map[string]int, len(colKeys)),
		cells:    make([][]float64, len(rowKeys)),
		present:  make([][]bool, len(rowKeys)),
	}
	for i, k := range t.rowKeys {
		if _, dup := t.rowIndex[k]; dup {
			return nil, fmt.Errorf("duplicate row key %q", k)
		}
		t.rowIndex[k] = i
		t.cells[i] = make([]float64, len(colKeys))
		t.present[i] = make([]bool, len(colKeys))
	}
	for j, k := range t.colKeys {
		if _, dup := t.colIndex[k]; dup {
			return nil, fmt.Errorf("duplicate column key %q", k)
		}
		t.colIndex[k] = j
	}
	return t, nil
}

// RowKeys returns the row labels in table order.
func (t *Table) RowKeys() []string {
	return append([]string(nil), t.rowKeys...)
}

// ColKeys returns the column labels in table order.
func (t *Table) ColKeys() []string {
	return append([]string(nil), t.colKeys...)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rowKeys) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.colKeys) }

// Set stores a value at (rowKey, colKey) and marks the cell present.
// Used by the loader while a table is being built.
func (t *Table) Set(rowKey, colKey string, v float64) error {
	i, ok := t.rowIndex[rowKey]
	if !ok {
		return fmt.Errorf("set %q: %w", rowKey, ErrEntityNotFound)
	}
	j, ok := t.colIndex[colKey]
	if !ok {
		return fmt.Errorf("set column %q: %w", colKey, ErrEntityNotFound)
	}
	t.cells[i][j] = v
	t.present[i][j] = true
	return nil
}

// Value returns the cell at (rowKey, colKey). The bool reports whether
// the cell is present; an unknown key is an error, an absent cell is not.
func (t *Table) Value(rowKey, colKey string) (float64, bool, error) {
	i, ok := t.rowIndex[rowKey]
	if !ok {
		return 0, false, fmt.Errorf("row %q: %w", rowKey, ErrEntityNotFound)
	}
	j, ok := t.colIndex[colKey]
	if !ok {
		return 0, false, fmt.Errorf("column %q: %w", colKey, ErrEntityNotFound)
	}
	return t.cells[i][j], t.present[i][j], nil
}

// HasRow reports whether rowKey exists on the row axis.
func (t *Table) HasRow(rowKey string) bool {
	_, ok := t.rowIndex[rowKey]
	return ok
}

// Transpose returns a new table with the axes flipped. The result
// shares no mutable state with the receiver, so the two views of a
// dataset cannot drift apart.
func (t *Table) Transpose() *Table {
	tr, err := NewTable(t.colKeys, t.rowKeys)
	if err != nil {
		// Keys were already validated unique when t was built.
		panic(fmt.Sprintf("transpose of valid table: %v", err))
	}
	for i := range t.cells {
		for j, v := range t.cells[i] {
			if t.present[i][j] {
				tr.cells[j][i] = v
				tr.present[j][i] = true
			}
		}
	}
	return tr
}

// Equal reports whether two tables have identical axes and cells,
// including the presence mask.
func (t *Table) Equal(o *Table) bool {
	if len(t.rowKeys) != len(o.rowKeys) || len(t.colKeys) != len(o.colKeys) {
		return false
	}
	for i, k := range t.rowKeys {
		if o.rowKeys[i] != k {
			return false
		}
	}
	for j, k := range t.colKeys {
		if o.colKeys[j] != k {
			return false
		}
	}
	for i := range t.cells {
		for j := range t.cells[i] {
			if t.present[i][j] != o.present[i][j] {
				return false
			}
			if t.present[i][j] && t.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}
