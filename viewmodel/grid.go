package viewmodel

import "github.com/dasdy/datanav/model"

type GridPosition struct {
	Row, Col int
}

// Grid is the on-screen placement of the data points, indexed by cursor.
type Grid struct {
	Rows      int
	Cols      int
	Positions []GridPosition
}

// GridOf lays the data points out for display. When one axis is the outer
// sort key its groups become columns (horizontal) or rows (vertical);
// otherwise the points form a single row, or a single column when only the
// vertical axis is present.
func GridOf(vm model.ViewModel) Grid {
	total := vm.Len()
	grid := Grid{Rows: 1, Cols: max(total, 1), Positions: make([]GridPosition, 0, total)}

	place := func(i int) GridPosition { return GridPosition{0, i} }

	switch {
	case vm.SortedBy == model.SortedByHorizontal && vm.Vertical.GroupSize() > 0:
		inner := vm.Vertical.GroupSize()
		grid.Rows, grid.Cols = inner, ceilDiv(total, inner)
		place = func(i int) GridPosition { return GridPosition{i % inner, i / inner} }
	case vm.SortedBy == model.SortedByVertical && vm.Horizontal.GroupSize() > 0:
		inner := vm.Horizontal.GroupSize()
		grid.Rows, grid.Cols = ceilDiv(total, inner), inner
		place = func(i int) GridPosition { return GridPosition{i / inner, i % inner} }
	case vm.Horizontal.Len() == 0:
		grid.Rows, grid.Cols = max(total, 1), 1
		place = func(i int) GridPosition { return GridPosition{i, 0} }
	}

	for i := range total {
		grid.Positions = append(grid.Positions, place(i))
	}

	return grid
}

// Label is the text of data point i: both category values when present.
func Label(vm model.ViewModel, i int) string {
	h, v := valueAt(vm.Horizontal, i), valueAt(vm.Vertical, i)

	switch {
	case h != "" && v != "":
		return h + " / " + v
	case h != "":
		return h
	default:
		return v
	}
}

func valueAt(axis model.CategoryAxis, i int) string {
	if i >= 0 && i < len(axis.Values) {
		return axis.Values[i]
	}

	return ""
}

func ceilDiv(a, b int) int {
	return max((a+b-1)/b, 1)
}
