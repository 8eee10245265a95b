package settings

import (
	"fmt"
	"maps"
	"math"

	"github.com/dasdy/datanav/model"
	"github.com/spf13/cast"
)

const (
	ObjectName = "navigation"

	PropertyHorizontal  = "horizontal"
	PropertyVertical    = "vertical"
	PropertyDiagonal    = "diagonal"
	PropertyIncremental = "incremental"

	MinIncremental = 1
	MaxIncremental = 100
)

// Default is what an empty configuration resolves to.
func Default() model.Settings {
	return model.Settings{
		Horizontal:  true,
		Vertical:    true,
		Diagonal:    false,
		Incremental: MinIncremental,
	}
}

// GetValue reads objects[objectName][propertyName], falling back to
// defaultValue when the property is absent or has another type.
func GetValue[T any](objects model.Objects, objectName, propertyName string, defaultValue T) T {
	raw, ok := lookup(objects, objectName, propertyName)
	if !ok {
		return defaultValue
	}

	value, ok := raw.(T)
	if !ok {
		return defaultValue
	}

	return value
}

// getInteger accepts any numeric kind as long as it holds a whole number.
// YAML hands out ints, JSON float64.
func getInteger(objects model.Objects, objectName, propertyName string, defaultValue int) int {
	raw, ok := lookup(objects, objectName, propertyName)
	if !ok {
		return defaultValue
	}

	switch raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
	default:
		return defaultValue
	}

	n, err := cast.ToFloat64E(raw)
	if err != nil || n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return defaultValue
	}

	return int(n)
}

func lookup(objects model.Objects, objectName, propertyName string) (any, bool) {
	object, ok := objects[objectName]
	if !ok {
		return nil, false
	}

	raw, ok := object[propertyName]
	if !ok || raw == nil {
		return nil, false
	}

	return raw, true
}

// Resolve turns the raw configuration into validated settings.
func Resolve(objects model.Objects) model.Settings {
	def := Default()

	result := model.Settings{
		Horizontal:  GetValue(objects, ObjectName, PropertyHorizontal, def.Horizontal),
		Vertical:    GetValue(objects, ObjectName, PropertyVertical, def.Vertical),
		Incremental: getInteger(objects, ObjectName, PropertyIncremental, def.Incremental),
	}

	// Diagonal moves need both directions.
	result.Diagonal = GetValue(objects, ObjectName, PropertyDiagonal, def.Diagonal) &&
		result.Horizontal && result.Vertical

	if result.Incremental < MinIncremental || result.Incremental > MaxIncremental {
		result.Incremental = def.Incremental
	}

	return result
}

// Apply merges textual property values, as submitted from a settings form,
// into a copy of objects. Unknown properties are rejected.
func Apply(objects model.Objects, values map[string]string) (model.Objects, error) {
	result := make(model.Objects, len(objects)+1)
	for name, object := range objects {
		result[name] = maps.Clone(object)
	}

	object, ok := result[ObjectName]
	if !ok || object == nil {
		object = make(map[string]any)
		result[ObjectName] = object
	}

	for property, raw := range values {
		switch property {
		case PropertyHorizontal, PropertyVertical, PropertyDiagonal:
			v, err := cast.ToBoolE(raw)
			if err != nil {
				return nil, fmt.Errorf("could not parse %s=%q: %w", property, raw, err)
			}

			object[property] = v
		case PropertyIncremental:
			v, err := cast.ToIntE(raw)
			if err != nil {
				return nil, fmt.Errorf("could not parse %s=%q: %w", property, raw, err)
			}

			if v < MinIncremental || v > MaxIncremental {
				return nil, fmt.Errorf("%s must be within [%d, %d], got %d", property, MinIncremental, MaxIncremental, v)
			}

			object[property] = v
		default:
			return nil, fmt.Errorf("unknown property %q", property)
		}
	}

	return result, nil
}
