package navigator

import (
	"log/slog"

	"github.com/dasdy/datanav/logging"
	"github.com/dasdy/datanav/model"
)

var logCtx = logging.PackageCtx("navigator")

// Navigator owns the cursor and the current view model of one visual.
// It is not safe for concurrent use; hosts serialise updates and moves.
type Navigator struct {
	viewModel model.ViewModel
	cursor    int
	selection model.SelectionManager
}

func New(selection model.SelectionManager) *Navigator {
	return &Navigator{selection: selection}
}

func (n *Navigator) Cursor() int {
	return n.cursor
}

func (n *Navigator) ViewModel() model.ViewModel {
	return n.viewModel
}

// Update installs a rebuilt view model. The cursor is kept unless it no
// longer addresses a data point, in which case it goes back to 0 and the
// selection is dropped along with it.
func (n *Navigator) Update(vm model.ViewModel) {
	n.viewModel = vm

	if n.cursor >= vm.Len() {
		slog.DebugContext(logCtx, "cursor out of range after update, resetting",
			"cursor", n.cursor,
			"len", vm.Len())

		n.cursor = 0

		if n.selection != nil {
			n.selection.Clear()
		}
	}
}

// Step applies one move. On success the cursor is stored and the selection
// service is told about the new data point.
func (n *Navigator) Step(direction model.Direction, sign int) bool {
	next, id, ok := Step(&n.viewModel, n.cursor, direction, sign)
	if !ok {
		slog.DebugContext(logCtx, "step rejected",
			"direction", direction,
			"sign", sign,
			"cursor", n.cursor)

		return false
	}

	n.cursor = next

	if n.selection != nil {
		n.selection.Select(id)
	}

	return true
}

// Dispatch runs every move of a command and returns how many succeeded.
// Commands disabled by the settings do nothing.
func (n *Navigator) Dispatch(cmd Command) int {
	if !cmd.Enabled(n.viewModel.Settings) {
		slog.DebugContext(logCtx, "command disabled", "command", cmd)

		return 0
	}

	moved := 0

	for _, m := range cmd.Moves() {
		if n.Step(m.Direction, m.Sign) {
			moved++
		}
	}

	return moved
}
