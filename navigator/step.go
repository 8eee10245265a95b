package navigator

import "github.com/dasdy/datanav/model"

// Step computes where the cursor lands after moving sign*Incremental
// positions along direction. It returns the new cursor and the handle to
// select, or ok=false when the move is rejected; in that case the cursor
// is returned unchanged.
func Step(vm *model.ViewModel, cursor int, direction model.Direction, sign int) (int, model.SelectionID, bool) {
	if vm == nil || vm.NumberOfAxis == 0 || sign == 0 || cursor < 0 {
		return cursor, nil, false
	}

	axis := vm.Axis(direction)
	if axis.Len() == 0 {
		return cursor, nil, false
	}

	displacement := sign * max(vm.Settings.Incremental, 1)

	var (
		next int
		ok   bool
	)

	switch {
	case direction == model.Vertical && vm.SortedBy == model.SortedByHorizontal:
		next, ok = withinGroup(cursor, displacement, vm.Vertical.GroupSize())
	case direction == model.Horizontal && vm.SortedBy == model.SortedByHorizontal:
		next, ok = acrossGroups(cursor, displacement, vm.Horizontal.Len(), vm.Vertical)
	case direction == model.Vertical && vm.SortedBy == model.SortedByVertical:
		next, ok = acrossGroups(cursor, displacement, vm.Vertical.Len(), vm.Horizontal)
	case direction == model.Horizontal && vm.SortedBy == model.SortedByVertical:
		next, ok = withinGroup(cursor, displacement, vm.Horizontal.GroupSize())
	default:
		next = cursor + displacement
		ok = inBounds(next, 0, axis.Len()-1)
	}

	if !ok || next >= len(axis.IDs) {
		return cursor, nil, false
	}

	return next, axis.IDs[next], true
}

// withinGroup moves along the inner axis. The cursor must stay inside the
// run of groupSize positions that shares its outer value.
func withinGroup(cursor, displacement, groupSize int) (int, bool) {
	if groupSize == 0 {
		return cursor, false
	}

	lo := (cursor / groupSize) * groupSize
	hi := lo + groupSize - 1
	next := cursor + displacement

	return next, inBounds(next, lo, hi)
}

// acrossGroups moves along the outer axis. With an inner axis present one
// step skips a whole group.
func acrossGroups(cursor, displacement, length int, inner model.CategoryAxis) (int, bool) {
	if inner.Len() > 0 {
		displacement *= inner.GroupSize()
	}

	next := cursor + displacement

	return next, inBounds(next, 0, length-1)
}

func inBounds(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
