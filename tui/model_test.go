package tui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/navigator"
	"github.com/dasdy/datanav/selection"
	"github.com/dasdy/datanav/settings"
	"github.com/dasdy/datanav/tui"
	"github.com/dasdy/datanav/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SelectionMock counts selected handles.
type SelectionMock struct {
	CallCount  int
	ClearCount int
	Last       model.SelectionID
}

func (m *SelectionMock) Select(id model.SelectionID) {
	m.CallCount++
	m.Last = id
}

func (m *SelectionMock) Clear() {
	m.ClearCount++
	m.Last = nil
}

// ReloadMock hands out a fixed view model.
type ReloadMock struct {
	VM        model.ViewModel
	Err       error
	CallCount int
}

func (r *ReloadMock) Reload() (model.ViewModel, error) {
	r.CallCount++

	return r.VM, r.Err
}

func salesViewModel(objects model.Objects) model.ViewModel {
	region := model.Column{DisplayName: "Region", Roles: map[model.Role]bool{model.RoleHorizontal: true}}
	product := model.Column{DisplayName: "Product", Roles: map[model.Role]bool{model.RoleVertical: true}}

	return viewmodel.Build(&model.DataView{
		Metadata: []model.Column{region, product},
		Categories: []model.CategoryColumn{
			{Source: region, Values: []any{"A", "A", "B", "B"}},
			{Source: product, Values: []any{"X", "Y", "X", "Y"}},
		},
	}, objects, selection.Builder{Dataset: "sales"})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func setup(objects model.Objects) (*navigator.Navigator, *SelectionMock, *ReloadMock, tui.Model) {
	sel := &SelectionMock{}
	nav := navigator.New(sel)
	nav.Update(salesViewModel(objects))

	reload := &ReloadMock{VM: salesViewModel(objects)}

	return nav, sel, reload, tui.New("sales", nav, reload.Reload)
}

func press(m tui.Model, msgs ...tea.Msg) (tui.Model, tea.Cmd) {
	var cmd tea.Cmd

	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(tui.Model)
	}

	return m, cmd
}

func TestUpdateKeys(t *testing.T) {
	tests := []struct {
		name     string
		objects  model.Objects
		keys     []tea.Msg
		expected int
		selected int
	}{
		{"j moves down", nil, []tea.Msg{runes("j")}, 1, 1},
		{"arrow down moves down", nil, []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}}, 1, 1},
		{"l moves to the next group", nil, []tea.Msg{runes("l")}, 2, 1},
		{"h at the start stays put", nil, []tea.Msg{runes("h")}, 0, 0},
		{"k back up", nil, []tea.Msg{runes("j"), runes("k")}, 0, 2},
		{"diagonal disabled", nil, []tea.Msg{runes("n")}, 0, 0},
		{
			"diagonal enabled",
			model.Objects{settings.ObjectName: {settings.PropertyDiagonal: true}},
			[]tea.Msg{runes("n")},
			3,
			2,
		},
		{"unbound key", nil, []tea.Msg{runes("x")}, 0, 0},
		{"window resize is ignored", nil, []tea.Msg{tea.WindowSizeMsg{Width: 80, Height: 24}}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nav, sel, _, m := setup(tc.objects)

			_, cmd := press(m, tc.keys...)

			assert.Nil(t, cmd)
			assert.Equal(t, tc.expected, nav.Cursor())
			assert.Equal(t, tc.selected, sel.CallCount)
		})
	}
}

func TestQuit(t *testing.T) {
	_, _, _, m := setup(nil)

	_, cmd := press(m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReload(t *testing.T) {
	t.Run("installs the new view model", func(t *testing.T) {
		nav, _, reload, m := setup(nil)
		reload.VM = salesViewModel(model.Objects{settings.ObjectName: {settings.PropertyIncremental: 2}})

		m, _ = press(m, runes("r"))

		assert.Equal(t, 1, reload.CallCount)
		assert.Equal(t, 2, nav.ViewModel().Settings.Incremental)
		assert.Contains(t, m.View(), "reloaded 4 points")
	})

	t.Run("shows the error", func(t *testing.T) {
		nav, _, reload, m := setup(nil)
		reload.Err = errors.New("database error")

		m, _ = press(m, runes("j"), runes("r"))

		assert.Equal(t, 1, nav.Cursor())
		assert.Contains(t, m.View(), "database error")
	})
}

func TestView(t *testing.T) {
	_, _, _, m := setup(nil)

	view := m.View()

	assert.Contains(t, view, "sales")
	assert.Contains(t, view, "A / X")
	assert.Contains(t, view, "B / Y")
	assert.Contains(t, view, "Region")
	assert.Contains(t, view, "incremental=1")
}

func TestViewWithoutData(t *testing.T) {
	nav := navigator.New(nil)
	m := tui.New("empty", nav, nil)

	m, _ = press(m, runes("r"), runes("l"))

	assert.Contains(t, m.View(), "no category data")
	assert.Equal(t, 0, nav.Cursor())
}
