//go:generate go tool templ generate

package components

import (
	"fmt"

	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/settings"
)

// Cell is one data point on the plotting surface. Row and Col are zero based.
type Cell struct {
	Index    int
	Label    string
	Row      int
	Col      int
	Current  bool
	Selected bool
}

// Arrow is one navigation control around the chart.
type Arrow struct {
	Command string
	Label   string
	Enabled bool
}

type RenderContext struct {
	Dataset        string
	HorizontalName string
	VerticalName   string
	TotalRows      int
	TotalCols      int
	Cells          []Cell
	Arrows         []Arrow
	Cursor         int
	SelectedKey    string
	Settings       []settings.Property
	History        []model.SelectionRecord
}

// GridStyle sizes the CSS grid holding the cells.
func (rc *RenderContext) GridStyle() string {
	return fmt.Sprintf("grid-template-columns: repeat(%d, minmax(4em, 1fr)); grid-template-rows: repeat(%d, auto);",
		max(rc.TotalCols, 1), max(rc.TotalRows, 1))
}

// Style places the cell on the grid. CSS grid lines start at 1.
func (c *Cell) Style() string {
	return fmt.Sprintf("grid-row: %d; grid-column: %d;", c.Row+1, c.Col+1)
}

// Arrow returns the control for a command, or a disabled placeholder.
func (rc *RenderContext) Arrow(command string) Arrow {
	for _, a := range rc.Arrows {
		if a.Command == command {
			return a
		}
	}

	return Arrow{Command: command, Label: "·"}
}
