package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/navigator"
	"github.com/dasdy/datanav/settings"
	"github.com/dasdy/datanav/viewmodel"
	cs "github.com/dasdy/datanav/web/components"
)

// BuildVisualRenderContext collects everything the visual page shows.
func BuildVisualRenderContext(
	dataset string,
	vm model.ViewModel,
	cursor int,
	selected model.SelectionID,
	history []model.SelectionRecord,
) cs.RenderContext {
	grid := viewmodel.GridOf(vm)

	selectedKey := ""
	if selected != nil {
		selectedKey = selected.Key()
	}

	cells := make([]cs.Cell, 0, len(grid.Positions))

	for i, pos := range grid.Positions {
		cells = append(cells, cs.Cell{
			Index:    i,
			Label:    viewmodel.Label(vm, i),
			Row:      pos.Row,
			Col:      pos.Col,
			Current:  i == cursor,
			Selected: selectedKey != "" && (keyAt(vm.Horizontal, i) == selectedKey || keyAt(vm.Vertical, i) == selectedKey),
		})
	}

	arrows := make([]cs.Arrow, 0, len(navigator.Commands))
	for _, c := range navigator.Commands {
		arrows = append(arrows, cs.Arrow{Command: string(c), Label: c.Label(), Enabled: c.Enabled(vm.Settings)})
	}

	return cs.RenderContext{
		Dataset:        dataset,
		HorizontalName: vm.Horizontal.DisplayName,
		VerticalName:   vm.Vertical.DisplayName,
		TotalRows:      grid.Rows,
		TotalCols:      grid.Cols,
		Cells:          cells,
		Arrows:         arrows,
		Cursor:         cursor,
		SelectedKey:    selectedKey,
		Settings:       settings.Enumerate(vm.Settings),
		History:        history,
	}
}

func (s *ServerHandler) VisualHandle(w http.ResponseWriter, _ *http.Request) {
	slog.DebugContext(s.ctx, "Got request to visual page")

	history, err := s.Storage.SelectionHistory(s.Dataset, HistoryLimit)
	if err != nil {
		slog.ErrorContext(s.ctx, "Could not get selection history", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	vm, cursor := s.snapshot()

	renderContext := BuildVisualRenderContext(s.Dataset, vm, cursor, s.Selection.Current(), history)
	if err := SafeRenderTemplate(cs.Visual(&renderContext), w); err != nil {
		slog.ErrorContext(s.ctx, "Could not render visual", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func keyAt(axis model.CategoryAxis, i int) string {
	if i < len(axis.IDs) && axis.IDs[i] != nil {
		return axis.IDs[i].Key()
	}

	return ""
}
