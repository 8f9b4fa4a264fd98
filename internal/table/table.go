// Package table holds consumption time series as a time-indexed table with one
// column per reported variable.
package table

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ConsumptionTable is an immutable-by-convention table: rows are intervals keyed by
// their start time, columns are variables. Cells without a reported value are NaN.
type ConsumptionTable struct {
	index   []time.Time
	names   []string
	columns map[string][]float64
}

// NewConsumptionTable builds a table from an index and columns. The index must be
// strictly increasing and every column must have one value per row.
func NewConsumptionTable(index []time.Time, columns map[string][]float64) (*ConsumptionTable, error) {
	for i := 1; i < len(index); i++ {
		if !index[i].After(index[i-1]) {
			return nil, fmt.Errorf("index not strictly increasing at row %d (%s)", i, index[i].Format(time.RFC3339))
		}
	}

	t := &ConsumptionTable{
		index:   append([]time.Time(nil), index...),
		columns: make(map[string][]float64, len(columns)),
	}
	for name, values := range columns {
		if len(values) != len(index) {
			return nil, fmt.Errorf("column %s has %d values for %d rows", name, len(values), len(index))
		}
		t.columns[name] = append([]float64(nil), values...)
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)

	return t, nil
}

// Len returns the number of rows.
func (t *ConsumptionTable) Len() int { return len(t.index) }

// Index returns a copy of the row timestamps.
func (t *ConsumptionTable) Index() []time.Time {
	return append([]time.Time(nil), t.index...)
}

// Columns returns the column names in sorted order.
func (t *ConsumptionTable) Columns() []string {
	return append([]string(nil), t.names...)
}

// Column returns a copy of the named column.
func (t *ConsumptionTable) Column(name string) ([]float64, bool) {
	values, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), values...), true
}

// Value returns a single cell, NaN if the column does not exist.
func (t *ConsumptionTable) Value(row int, name string) float64 {
	values, ok := t.columns[name]
	if !ok {
		return math.NaN()
	}
	return values[row]
}

// Clone returns a deep copy.
func (t *ConsumptionTable) Clone() *ConsumptionTable {
	c := &ConsumptionTable{
		index:   append([]time.Time(nil), t.index...),
		names:   append([]string(nil), t.names...),
		columns: make(map[string][]float64, len(t.columns)),
	}
	for name, values := range t.columns {
		c.columns[name] = append([]float64(nil), values...)
	}
	return c
}

// WithColumn returns a copy of the table with the named column added or replaced.
func (t *ConsumptionTable) WithColumn(name string, values []float64) (*ConsumptionTable, error) {
	if len(values) != len(t.index) {
		return nil, fmt.Errorf("column %s has %d values for %d rows", name, len(values), len(t.index))
	}

	c := t.Clone()
	if _, exists := c.columns[name]; !exists {
		c.names = append(c.names, name)
		sort.Strings(c.names)
	}
	c.columns[name] = append([]float64(nil), values...)
	return c, nil
}
