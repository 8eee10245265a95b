package model

// SelectionID identifies one data point for cross-filtering. The navigator
// never looks inside it, it only stores and forwards it.
type SelectionID interface {
	Key() string
}

// SelectionIDBuilder issues a handle for the value at index of a column.
type SelectionIDBuilder interface {
	ForCategory(column CategoryColumn, index int) SelectionID
}

// SelectionManager performs host-side selection. Every Select replaces the
// previous selection; Clear drops it.
type SelectionManager interface {
	Select(id SelectionID)
	Clear()
}
