package viewmodel

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/datanav/logging"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/settings"
	"github.com/spf13/cast"
)

var logCtx = logging.PackageCtx("viewmodel")

// Build converts one update payload into an immutable view model.
// Missing columns are not an error: the matching axis is simply empty.
func Build(view *model.DataView, objects model.Objects, ids model.SelectionIDBuilder) model.ViewModel {
	result := model.ViewModel{
		Settings: settings.Resolve(objects),
	}

	if view == nil {
		return result
	}

	var horizontalName, verticalName string

	hasHorizontal, hasVertical := false, false

	for i, column := range view.Metadata {
		if column.HasRole(model.RoleHorizontal) {
			horizontalName, hasHorizontal = column.DisplayName, true

			if i == 0 {
				result.SortedBy = model.SortedByHorizontal
			}
		}

		if column.HasRole(model.RoleVertical) {
			verticalName, hasVertical = column.DisplayName, true

			if i == 0 && result.SortedBy == model.SortedByNone {
				result.SortedBy = model.SortedByVertical
			}
		}
	}

	if hasHorizontal {
		if index := categoryIndex(view.Categories, horizontalName); index >= 0 {
			result.Horizontal = buildAxis(view.Categories[index], ids)
			result.NumberOfAxis++
		}
	}

	if hasVertical {
		if index := categoryIndex(view.Categories, verticalName); index >= 0 {
			result.Vertical = buildAxis(view.Categories[index], ids)
			result.NumberOfAxis++
		}
	}

	slog.DebugContext(logCtx, "built view model",
		"axes", result.NumberOfAxis,
		"sortedBy", result.SortedBy,
		"horizontal", result.Horizontal.Len(),
		"vertical", result.Vertical.Len())

	return result
}

func categoryIndex(categories []model.CategoryColumn, displayName string) int {
	for i, c := range categories {
		if c.Source.DisplayName == displayName {
			return i
		}
	}

	return -1
}

func buildAxis(column model.CategoryColumn, ids model.SelectionIDBuilder) model.CategoryAxis {
	values := make([]string, len(column.Values))
	handles := make([]model.SelectionID, len(column.Values))

	for i, raw := range column.Values {
		values[i] = ToLabel(raw)

		if ids != nil {
			handles[i] = ids.ForCategory(column, i)
		}
	}

	return model.NewCategoryAxis(column.Source.DisplayName, values, handles)
}

// ToLabel renders a raw category value as text. nil becomes "".
func ToLabel(raw any) string {
	s, err := cast.ToStringE(raw)
	if err != nil {
		return fmt.Sprint(raw)
	}

	return s
}
