// Package tabular provides indexed tabular types for the glassbox toolkit.
// It wraps gota dataframes and series with an explicit integer row index so
// that predictions, features and contributions can be checked for alignment.
package tabular

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame is a table with an explicit row index.
type Frame struct {
	df    dataframe.DataFrame
	index []int
}

// NewFrame wraps df with the given row index. A nil index produces the
// default range index 0..n-1. The index length must match the row count.
func NewFrame(df dataframe.DataFrame, index []int) (*Frame, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("invalid dataframe: %w", df.Err)
	}
	if index == nil {
		index = rangeIndex(df.Nrow())
	}
	if len(index) != df.Nrow() {
		return nil, fmt.Errorf("index length %d does not match row count %d", len(index), df.Nrow())
	}
	return &Frame{df: df, index: index}, nil
}

// Data returns the underlying dataframe.
func (f *Frame) Data() dataframe.DataFrame {
	return f.df
}

// Index returns a copy of the row index.
func (f *Frame) Index() []int {
	out := make([]int, len(f.index))
	copy(out, f.index)
	return out
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return f.df.Nrow()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return f.df.Ncol()
}

// ColumnTypes returns the gota type of each column.
func (f *Frame) ColumnTypes() []series.Type {
	return f.df.Types()
}

// Dims returns the row and column counts, matching the gonum matrix
// convention so a Frame can stand in wherever dimensions are inspected.
func (f *Frame) Dims() (r, c int) {
	return f.df.Nrow(), f.df.Ncol()
}

// Series is a single column with an explicit row index.
type Series struct {
	s     series.Series
	index []int
}

// NewSeries wraps s with the given row index. A nil index produces the
// default range index 0..n-1. The index length must match the series length.
func NewSeries(s series.Series, index []int) (*Series, error) {
	if s.Err != nil {
		return nil, fmt.Errorf("invalid series: %w", s.Err)
	}
	if index == nil {
		index = rangeIndex(s.Len())
	}
	if len(index) != s.Len() {
		return nil, fmt.Errorf("index length %d does not match series length %d", len(index), s.Len())
	}
	return &Series{s: s, index: index}, nil
}

// Data returns the underlying gota series.
func (s *Series) Data() series.Series {
	return s.s
}

// Index returns a copy of the row index.
func (s *Series) Index() []int {
	out := make([]int, len(s.index))
	copy(out, s.index)
	return out
}

// Len returns the number of elements.
func (s *Series) Len() int {
	return s.s.Len()
}

// Type returns the gota element type.
func (s *Series) Type() series.Type {
	return s.s.Type()
}

// ToFrame converts the series into a single-column Frame carrying the
// same row index. The series itself is not modified.
func (s *Series) ToFrame() *Frame {
	return &Frame{
		df:    dataframe.New(s.s.Copy()),
		index: s.Index(),
	}
}

// IndexEqual reports whether two row indexes are equal elementwise.
func IndexEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsNumeric reports whether t is an integer or floating-point column type.
func IsNumeric(t series.Type) bool {
	return t == series.Int || t == series.Float
}

func rangeIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
