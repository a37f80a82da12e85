package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind discriminates how a series stores its values
type Kind int

const (
	Numeric Kind = iota
	String
)

// Series is a single named column of a Frame. Exactly one of Num or Str
// is populated, according to Kind.
type Series struct {
	Name string
	Kind Kind
	Num  []float64
	Str  []string
}

// Len returns the number of values in the series
func (s *Series) Len() int {
	if s.Kind == Numeric {
		return len(s.Num)
	}
	return len(s.Str)
}

// Cell returns the formatted value at row i
func (s *Series) Cell(i int) string {
	if s.Kind == Numeric {
		return strconv.FormatFloat(s.Num[i], 'g', -1, 64)
	}
	return s.Str[i]
}

// Frame is an ordered collection of named series, all of equal length.
// It is the single mutable dataset a pipeline run owns; it is not safe
// for concurrent mutation.
type Frame struct {
	series []*Series
	index  map[string]int
}

// New creates an empty frame
func New() *Frame {
	return &Frame{index: make(map[string]int)}
}

// FromRecords builds a frame from a header row and raw string rows.
// A column where every cell parses as a float becomes numeric; any other
// column stays string. Rows whose width differs from the header are
// rejected.
func FromRecords(headers []string, rows [][]string) (*Frame, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("header row is empty")
	}
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		if seen[h] {
			return nil, fmt.Errorf("duplicate column %q", h)
		}
		seen[h] = true
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(headers))
		}
	}

	f := New()
	for j, name := range headers {
		col := make([]string, len(rows))
		for i, row := range rows {
			col[i] = strings.TrimSpace(row[j])
		}
		if nums, ok := tryNumeric(col); ok {
			f.mustPut(&Series{Name: name, Kind: Numeric, Num: nums})
		} else {
			f.mustPut(&Series{Name: name, Kind: String, Str: col})
		}
	}
	return f, nil
}

// tryNumeric parses a raw column as floats, all-or-nothing
func tryNumeric(col []string) ([]float64, bool) {
	if len(col) == 0 {
		return nil, false
	}
	nums := make([]float64, len(col))
	for i, v := range col {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

// NumRows returns the row count
func (f *Frame) NumRows() int {
	if len(f.series) == 0 {
		return 0
	}
	return f.series[0].Len()
}

// NumCols returns the column count
func (f *Frame) NumCols() int {
	return len(f.series)
}

// Names returns the column names in order
func (f *Frame) Names() []string {
	names := make([]string, len(f.series))
	for i, s := range f.series {
		names[i] = s.Name
	}
	return names
}

// Has reports whether a column exists
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named series
func (f *Frame) Column(name string) (*Series, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.series[i], true
}

// Numeric returns the float values of a numeric column
func (f *Frame) Numeric(name string) ([]float64, error) {
	s, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if s.Kind != Numeric {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return s.Num, nil
}

// Strings returns the string values of a string column
func (f *Frame) Strings(name string) ([]string, error) {
	s, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if s.Kind != String {
		return nil, fmt.Errorf("column %q is not a string column", name)
	}
	return s.Str, nil
}

// Rename changes a column name in place
func (f *Frame) Rename(old, new string) error {
	i, ok := f.index[old]
	if !ok {
		return fmt.Errorf("column %q not found", old)
	}
	if f.Has(new) {
		return fmt.Errorf("column %q already exists", new)
	}
	f.series[i].Name = new
	delete(f.index, old)
	f.index[new] = i
	return nil
}

// Drop removes the named columns; every name must exist
func (f *Frame) Drop(names ...string) error {
	for _, name := range names {
		if !f.Has(name) {
			return fmt.Errorf("column %q not found", name)
		}
	}
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	kept := f.series[:0]
	for _, s := range f.series {
		if !drop[s.Name] {
			kept = append(kept, s)
		}
	}
	f.series = kept
	f.reindex()
	return nil
}

// PutNumeric assigns a numeric column. An existing column is replaced in
// place, keeping its position; a new one is appended at the end.
func (f *Frame) PutNumeric(name string, values []float64) error {
	return f.put(&Series{Name: name, Kind: Numeric, Num: values})
}

// PutStrings assigns a string column, replacing in place or appending
func (f *Frame) PutStrings(name string, values []string) error {
	return f.put(&Series{Name: name, Kind: String, Str: values})
}

func (f *Frame) put(s *Series) error {
	if f.NumCols() > 0 && s.Len() != f.NumRows() {
		return fmt.Errorf("column %q has %d values, frame has %d rows", s.Name, s.Len(), f.NumRows())
	}
	if i, ok := f.index[s.Name]; ok {
		f.series[i] = s
		return nil
	}
	f.mustPut(s)
	return nil
}

func (f *Frame) mustPut(s *Series) {
	f.index[s.Name] = len(f.series)
	f.series = append(f.series, s)
}

func (f *Frame) reindex() {
	f.index = make(map[string]int, len(f.series))
	for i, s := range f.series {
		f.index[s.Name] = i
	}
}

// Take builds a new frame from the given row indices, in order. An index
// may appear more than once, which duplicates the row.
func (f *Frame) Take(indices []int) *Frame {
	out := New()
	for _, s := range f.series {
		ns := &Series{Name: s.Name, Kind: s.Kind}
		if s.Kind == Numeric {
			ns.Num = make([]float64, len(indices))
			for i, idx := range indices {
				ns.Num[i] = s.Num[idx]
			}
		} else {
			ns.Str = make([]string, len(indices))
			for i, idx := range indices {
				ns.Str[i] = s.Str[idx]
			}
		}
		out.mustPut(ns)
	}
	return out
}

// Select builds a new frame holding copies of the named columns, in the
// order given
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := New()
	for _, name := range names {
		s, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("column %q not found", name)
		}
		ns := &Series{Name: s.Name, Kind: s.Kind}
		if s.Kind == Numeric {
			ns.Num = append([]float64(nil), s.Num...)
		} else {
			ns.Str = append([]string(nil), s.Str...)
		}
		out.mustPut(ns)
	}
	return out, nil
}

// Without builds a new frame holding copies of every column except the
// named ones
func (f *Frame) Without(names ...string) (*Frame, error) {
	skip := make(map[string]bool, len(names))
	for _, name := range names {
		if !f.Has(name) {
			return nil, fmt.Errorf("column %q not found", name)
		}
		skip[name] = true
	}
	keep := make([]string, 0, len(f.series))
	for _, s := range f.series {
		if !skip[s.Name] {
			keep = append(keep, s.Name)
		}
	}
	return f.Select(keep...)
}

// Records returns the frame as formatted rows, header first
func (f *Frame) Records() [][]string {
	out := make([][]string, 0, f.NumRows()+1)
	out = append(out, f.Names())
	for i := 0; i < f.NumRows(); i++ {
		row := make([]string, len(f.series))
		for j, s := range f.series {
			row[j] = s.Cell(i)
		}
		out = append(out, row)
	}
	return out
}

// WriteCSV writes the frame to w, header row included, no index column
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(f.Records()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
