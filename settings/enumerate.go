package settings

import "github.com/dasdy/datanav/model"

type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Property is one entry of the settings pane.
type Property struct {
	Object string `json:"object"`
	Name   string `json:"name"`
	Value  any    `json:"value"`
	Range  *Range `json:"range,omitempty"`
}

// Enumerate lists the resolved settings in pane order.
func Enumerate(s model.Settings) []Property {
	return []Property{
		{Object: ObjectName, Name: PropertyHorizontal, Value: s.Horizontal},
		{Object: ObjectName, Name: PropertyVertical, Value: s.Vertical},
		{Object: ObjectName, Name: PropertyDiagonal, Value: s.Diagonal},
		{
			Object: ObjectName,
			Name:   PropertyIncremental,
			Value:  s.Incremental,
			Range:  &Range{Min: MinIncremental, Max: MaxIncremental},
		},
	}
}
