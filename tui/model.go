package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/datanav/logging"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/navigator"
	"github.com/dasdy/datanav/viewmodel"
)

var logCtx = logging.PackageCtx("tui")

var (
	ColorCyan   = lipgloss.Color("#00d4ff")
	ColorOrange = lipgloss.Color("#f97316")
	ColorField  = lipgloss.Color("#0099cc")
	ColorDim    = lipgloss.Color("#666666")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(ColorDim)
	currentStyle = cellStyle.BorderForeground(ColorOrange).Foreground(ColorOrange).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(ColorCyan)
	descStyle    = lipgloss.NewStyle().Foreground(ColorField)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
)

// ReloadFunc fetches the latest view model, e.g. from storage.
type ReloadFunc func() (model.ViewModel, error)

// Model drives a Navigator from the keyboard. bubbletea calls Update from a
// single goroutine, so the navigator needs no locking here.
type Model struct {
	dataset string
	nav     *navigator.Navigator
	reload  ReloadFunc
	keys    KeyMap
	status  string
	err     error
}

func New(dataset string, nav *navigator.Navigator, reload ReloadFunc) Model {
	return Model{
		dataset: dataset,
		nav:     nav,
		reload:  reload,
		keys:    DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Reload):
		m.doReload()

		return m, nil
	}

	for _, cb := range m.keys.commandBindings() {
		if key.Matches(keyMsg, cb.binding) {
			m.dispatch(cb.command)

			break
		}
	}

	return m, nil
}

func (m *Model) dispatch(command navigator.Command) {
	if !command.Enabled(m.nav.ViewModel().Settings) {
		m.status = fmt.Sprintf("%s is disabled", command)

		return
	}

	moved := m.nav.Dispatch(command)
	m.status = fmt.Sprintf("%s %s: cursor %d", command.Label(), command, m.nav.Cursor())

	if moved == 0 {
		m.status = fmt.Sprintf("%s %s: no move", command.Label(), command)
	}

	slog.DebugContext(logCtx, "dispatched", "command", command, "moved", moved, "cursor", m.nav.Cursor())
}

func (m *Model) doReload() {
	if m.reload == nil {
		return
	}

	vm, err := m.reload()
	if err != nil {
		slog.ErrorContext(logCtx, "could not reload", "error", err)
		m.err = err

		return
	}

	m.err = nil
	m.nav.Update(vm)
	m.status = fmt.Sprintf("reloaded %d points", vm.Len())
}

func (m Model) View() string {
	vm := m.nav.ViewModel()

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.dataset))
	b.WriteString(descStyle.Render(fmt.Sprintf("  horizontal: %s  vertical: %s",
		orDash(vm.Horizontal.DisplayName), orDash(vm.Vertical.DisplayName))))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(vm, m.nav.Cursor()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(m.footer())

	return b.String()
}

func renderGrid(vm model.ViewModel, cursor int) string {
	grid := viewmodel.GridOf(vm)
	if len(grid.Positions) == 0 {
		return descStyle.Render("no category data")
	}

	cells := make([][]string, grid.Rows)
	for r := range cells {
		cells[r] = make([]string, grid.Cols)
	}

	width := 0
	for i := range grid.Positions {
		width = max(width, lipgloss.Width(viewmodel.Label(vm, i)))
	}

	for i, pos := range grid.Positions {
		style := cellStyle
		if i == cursor {
			style = currentStyle
		}

		cells[pos.Row][pos.Col] = style.Width(width + 2).Render(viewmodel.Label(vm, i))
	}

	rows := make([]string, 0, grid.Rows)

	for _, row := range cells {
		for c := range row {
			if row[c] == "" {
				row[c] = lipgloss.NewStyle().Width(width + 4).Render("")
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) footer() string {
	settings := m.nav.ViewModel().Settings
	parts := make([]string, 0, len(m.keys.ShortHelp()))

	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, keyStyle.Render(help.Key)+" "+descStyle.Render(help.Desc))
	}

	return strings.Join(parts, "  ") + "\n" + descStyle.Render(fmt.Sprintf(
		"horizontal=%t vertical=%t diagonal=%t incremental=%d",
		settings.Horizontal, settings.Vertical, settings.Diagonal, settings.Incremental))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// Run blocks until the user quits.
func Run(m Model) error {
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("could not run terminal interface: %w", err)
	}

	return nil
}
