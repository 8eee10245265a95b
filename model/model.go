package model

import "time"

// Role tags a metadata column with the axis it feeds.
type Role string

const (
	RoleHorizontal Role = "horizontalCategory"
	RoleVertical   Role = "verticalCategory"
)

// Column describes one entry of the data view metadata.
type Column struct {
	DisplayName string
	Roles       map[Role]bool
}

func (c Column) HasRole(role Role) bool {
	return c.Roles[role]
}

type CategoryColumn struct {
	Source Column
	Values []any
}

// DataView is the payload delivered on every update: metadata columns in
// their configured order plus the categorical columns with their raw values.
type DataView struct {
	Metadata   []Column
	Categories []CategoryColumn
}

// Objects holds the raw configuration, keyed by object and property name.
type Objects map[string]map[string]any

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// SortedBy names the outer axis, the one whose values vary slowest
// across the flattened cursor order.
type SortedBy int

const (
	SortedByNone SortedBy = iota
	SortedByHorizontal
	SortedByVertical
)

func (s SortedBy) String() string {
	switch s {
	case SortedByHorizontal:
		return "horizontal"
	case SortedByVertical:
		return "vertical"
	default:
		return "none"
	}
}

type Settings struct {
	Horizontal  bool
	Vertical    bool
	Diagonal    bool
	Incremental int
}

type ViewModel struct {
	Horizontal   CategoryAxis
	Vertical     CategoryAxis
	NumberOfAxis int
	SortedBy     SortedBy
	Settings     Settings
}

// Axis returns the axis addressed by a direction.
func (vm *ViewModel) Axis(direction Direction) CategoryAxis {
	if direction == Vertical {
		return vm.Vertical
	}

	return vm.Horizontal
}

// Len is the number of cursor positions that address a data point.
func (vm *ViewModel) Len() int {
	return max(len(vm.Horizontal.IDs), len(vm.Vertical.IDs))
}

// SelectionRecord is one entry of the selection history.
type SelectionRecord struct {
	Key       string
	Timestamp time.Time
}
