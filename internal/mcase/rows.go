package mcase

import (
	"gonum.org/v1/gonum/mat"
)

// FilterRows returns a new matrix holding the rows of m whose mask entry is
// true. A nil or fully-masked-out input yields nil.
func FilterRows(m *mat.Dense, keep []bool) *mat.Dense {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()
	n := 0
	for i := 0; i < rows; i++ {
		if keep[i] {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	out := mat.NewDense(n, cols, nil)
	k := 0
	for i := 0; i < rows; i++ {
		if keep[i] {
			out.SetRow(k, m.RawRowView(i))
			k++
		}
	}
	return out
}

// FilterCRows is FilterRows for complex matrices.
func FilterCRows(m *mat.CDense, keep []bool) *mat.CDense {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()
	n := 0
	for i := 0; i < rows; i++ {
		if keep[i] {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	out := mat.NewCDense(n, cols, nil)
	k := 0
	for i := 0; i < rows; i++ {
		if keep[i] {
			for j := 0; j < cols; j++ {
				out.Set(k, j, m.At(i, j))
			}
			k++
		}
	}
	return out
}

// PermuteRows returns a new matrix whose row k is row perm[k] of m.
func PermuteRows(m *mat.Dense, perm []int) *mat.Dense {
	if m == nil {
		return nil
	}
	_, cols := m.Dims()
	out := mat.NewDense(len(perm), cols, nil)
	for k, src := range perm {
		out.SetRow(k, m.RawRowView(src))
	}
	return out
}

// HeadRows returns a new matrix holding the first n rows of m.
func HeadRows(m *mat.Dense, n int) *mat.Dense {
	if m == nil || n == 0 {
		return nil
	}
	_, cols := m.Dims()
	out := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		out.SetRow(i, m.RawRowView(i))
	}
	return out
}
