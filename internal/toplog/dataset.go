package toplog

import "sort"

// Dataset maps column names to their cells in file order. Columns are
// created on first use. A Dataset returned by Parse is not modified
// afterwards.
type Dataset struct {
	columns map[string][]Value
}

// NewDataset returns an empty dataset.
func NewDataset() Dataset {
	return Dataset{columns: make(map[string][]Value)}
}

// FromColumns builds a dataset from explicit columns. The slices are copied.
func FromColumns(cols map[string][]Value) Dataset {
	d := NewDataset()
	for name, vals := range cols {
		d.columns[name] = append([]Value(nil), vals...)
	}
	return d
}

func (d *Dataset) append(name string, v Value) {
	if d.columns == nil {
		d.columns = make(map[string][]Value)
	}
	d.columns[name] = append(d.columns[name], v)
}

// Has reports whether the column exists.
func (d Dataset) Has(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Column returns a copy of the named column, or nil when absent.
func (d Dataset) Column(name string) []Value {
	vals, ok := d.columns[name]
	if !ok {
		return nil
	}
	return append([]Value(nil), vals...)
}

// Len returns the number of cells in the named column.
func (d Dataset) Len(name string) int {
	return len(d.columns[name])
}

// NumColumns returns the number of columns.
func (d Dataset) NumColumns() int {
	return len(d.columns)
}

// Names returns the column names in lexical order.
func (d Dataset) Names() []string {
	names := make([]string, 0, len(d.columns))
	for name := range d.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Samples holds the numeric cells of one column with their 0-based
// positions. Text cells are counted in Skipped and have no entry.
type Samples struct {
	Index   []float64
	Values  []float64
	Skipped int
}

// Numbers extracts the numeric cells of the named column.
func (d Dataset) Numbers(name string) Samples {
	vals := d.columns[name]
	s := Samples{
		Index:  make([]float64, 0, len(vals)),
		Values: make([]float64, 0, len(vals)),
	}
	for i, v := range vals {
		f, ok := v.Float()
		if !ok {
			s.Skipped++
			continue
		}
		s.Index = append(s.Index, float64(i))
		s.Values = append(s.Values, f)
	}
	return s
}

// Equal reports whether both datasets have the same columns and cells.
func (d Dataset) Equal(o Dataset) bool {
	if len(d.columns) != len(o.columns) {
		return false
	}
	for name, vals := range d.columns {
		other, ok := o.columns[name]
		if !ok || len(other) != len(vals) {
			return false
		}
		for i := range vals {
			if !vals[i].Equal(other[i]) {
				return false
			}
		}
	}
	return true
}
