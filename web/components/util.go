package components

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// SettingsFormMarker is posted by the settings pane. Its presence tells the
// handler that absent checkboxes were unchecked rather than left out.
const SettingsFormMarker = "settings-form"

// Row-major layout of the controls around the chart; "" is the chart itself.
var controlLayout = []string{
	"diag-nw", "up", "diag-ne",
	"left", "", "right",
	"diag-sw", "down", "diag-se",
}

// getNavigateLink returns the form action for a navigation command.
func getNavigateLink(command string) templ.SafeURL {
	return templ.SafeURL("/navigate?command=" + url.QueryEscape(command))
}

// getCellClass returns the classes of a chart cell.
func getCellClass(c *Cell) string {
	classes := []string{"cell"}

	if c.Current {
		classes = append(classes, "current")
	}

	if c.Selected {
		classes = append(classes, "selected")
	}

	return strings.Join(classes, " ")
}

// getSettingValue renders a property value for an input element.
func getSettingValue(v any) string {
	return fmt.Sprintf("%v", v)
}

func isChecked(v any) bool {
	b, ok := v.(bool)

	return ok && b
}

func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
