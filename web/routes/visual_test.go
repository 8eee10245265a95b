package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/selection"
	"github.com/dasdy/datanav/settings"
	"github.com/dasdy/datanav/web/components"
	"github.com/dasdy/datanav/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAxis(name string, values ...string) model.CategoryAxis {
	ids := make([]model.SelectionID, len(values))
	for i := range values {
		ids[i] = selection.PointID{Dataset: testDataset, Column: name, Index: i}
	}

	return model.NewCategoryAxis(name, values, ids)
}

func testViewModel(horizontal, vertical model.CategoryAxis, sortedBy model.SortedBy) model.ViewModel {
	return model.ViewModel{
		Horizontal: horizontal,
		Vertical:   vertical,
		SortedBy:   sortedBy,
		Settings:   settings.Default(),
	}
}

type cellPlace struct {
	Row, Col int
}

func places(cells []components.Cell) []cellPlace {
	result := make([]cellPlace, 0, len(cells))
	for _, c := range cells {
		result = append(result, cellPlace{c.Row, c.Col})
	}

	return result
}

func TestBuildVisualRenderContext(t *testing.T) {
	tests := []struct {
		name   string
		vm     model.ViewModel
		rows   int
		cols   int
		places []cellPlace
	}{
		{
			name: "horizontal groups become columns",
			vm: testViewModel(
				testAxis("Region", "A", "A", "B", "B"),
				testAxis("Product", "X", "Y", "X", "Y"),
				model.SortedByHorizontal),
			rows:   2,
			cols:   2,
			places: []cellPlace{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		{
			name: "vertical groups become rows",
			vm: testViewModel(
				testAxis("Region", "A", "B", "C", "A", "B", "C"),
				testAxis("Product", "X", "X", "X", "Y", "Y", "Y"),
				model.SortedByVertical),
			rows:   2,
			cols:   3,
			places: []cellPlace{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		},
		{
			name:   "horizontal only is one row",
			vm:     testViewModel(testAxis("Region", "A", "B", "C"), model.CategoryAxis{}, model.SortedByHorizontal),
			rows:   1,
			cols:   3,
			places: []cellPlace{{0, 0}, {0, 1}, {0, 2}},
		},
		{
			name:   "vertical only is one column",
			vm:     testViewModel(model.CategoryAxis{}, testAxis("Product", "X", "Y"), model.SortedByVertical),
			rows:   2,
			cols:   1,
			places: []cellPlace{{0, 0}, {1, 0}},
		},
		{
			name:   "no data",
			vm:     testViewModel(model.CategoryAxis{}, model.CategoryAxis{}, model.SortedByNone),
			rows:   1,
			cols:   1,
			places: []cellPlace{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rc := routes.BuildVisualRenderContext(testDataset, tc.vm, 0, nil, nil)

			assert.Equal(t, tc.rows, rc.TotalRows)
			assert.Equal(t, tc.cols, rc.TotalCols)
			assert.Equal(t, tc.places, places(rc.Cells))
		})
	}

	t.Run("marks the current and selected cells", func(t *testing.T) {
		vm := testViewModel(
			testAxis("Region", "A", "A", "B", "B"),
			testAxis("Product", "X", "Y", "X", "Y"),
			model.SortedByHorizontal)
		selected := selection.PointID{Dataset: testDataset, Column: "Region", Index: 2}

		rc := routes.BuildVisualRenderContext(testDataset, vm, 2, selected, nil)

		require.Len(t, rc.Cells, 4)
		assert.True(t, rc.Cells[2].Current)
		assert.True(t, rc.Cells[2].Selected)
		assert.False(t, rc.Cells[0].Current)
		assert.False(t, rc.Cells[3].Selected)
		assert.Equal(t, "sales/Region/2", rc.SelectedKey)
		assert.Equal(t, "B / X", rc.Cells[2].Label)
	})

	t.Run("arrows follow the settings", func(t *testing.T) {
		vm := testViewModel(testAxis("Region", "A"), model.CategoryAxis{}, model.SortedByHorizontal)
		vm.Settings.Vertical = false

		rc := routes.BuildVisualRenderContext(testDataset, vm, 0, nil, nil)

		require.Len(t, rc.Arrows, 8)
		assert.True(t, rc.Arrow("left").Enabled)
		assert.True(t, rc.Arrow("right").Enabled)
		assert.False(t, rc.Arrow("up").Enabled)
		assert.False(t, rc.Arrow("diag-ne").Enabled)
		assert.Equal(t, "←", rc.Arrow("left").Label)
		require.Len(t, rc.Settings, 4)
		require.NotNil(t, rc.Settings[3].Range)
		assert.Equal(t, settings.MaxIncremental, rc.Settings[3].Range.Max)
	})
}

func TestVisualHandle(t *testing.T) {
	t.Run("renders the page", func(t *testing.T) {
		handler, storage := setupServerHandler(t, nil)
		storage.History = []model.SelectionRecord{
			{Key: "sales/Product/1", Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.VisualHandle(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "<h1>sales</h1>")
		assert.Contains(t, body, `class="cell current"`)
		assert.Contains(t, body, `action="/navigate?command=down"`)
		assert.Contains(t, body, "sales/Product/1")
		assert.Contains(t, body, "2024-05-01 10:00:00")
	})

	t.Run("history error", func(t *testing.T) {
		handler, storage := setupServerHandler(t, nil)
		storage.HistoryError = errors.New("database error")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.VisualHandle(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
