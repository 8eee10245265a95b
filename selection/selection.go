package selection

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dasdy/datanav/logging"
	"github.com/dasdy/datanav/model"
)

// PointID identifies a category value by dataset, column and position.
type PointID struct {
	Dataset string
	Column  string
	Index   int
}

func (p PointID) Key() string {
	return fmt.Sprintf("%s/%s/%d", p.Dataset, p.Column, p.Index)
}

// Builder issues PointIDs for one dataset.
type Builder struct {
	Dataset string
}

func (b Builder) ForCategory(column model.CategoryColumn, index int) model.SelectionID {
	return PointID{Dataset: b.Dataset, Column: column.Source.DisplayName, Index: index}
}

// Recorder persists selections. db.SQLiteStorage implements it.
type Recorder interface {
	RecordSelection(dataset, key string) error
}

// Manager holds the single current selection. It is read by renderers and
// written by the navigator, possibly from different goroutines.
type Manager struct {
	dataset  string
	recorder Recorder
	current  model.SelectionID
	lock     sync.RWMutex
	ctx      context.Context
}

func NewManager(dataset string, recorder Recorder) *Manager {
	return &Manager{
		dataset:  dataset,
		recorder: recorder,
		lock:     sync.RWMutex{},
		ctx:      logging.DatasetCtx(logging.PackageCtx("selection"), dataset),
	}
}

// Select replaces the current selection. Recording failures are logged only.
func (m *Manager) Select(id model.SelectionID) {
	m.lock.Lock()
	m.current = id
	m.lock.Unlock()

	if id == nil {
		return
	}

	slog.InfoContext(m.ctx, "selected", "key", id.Key())

	if m.recorder == nil {
		return
	}

	if err := m.recorder.RecordSelection(m.dataset, id.Key()); err != nil {
		slog.ErrorContext(m.ctx, "could not record selection", "key", id.Key(), "error", err)
	}
}

// Current returns the selected handle, or nil before the first selection.
func (m *Manager) Current() model.SelectionID {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.current
}

// Clear drops the current selection. The navigator calls it when a rebuilt
// view model no longer holds the selected point. Nothing is recorded.
func (m *Manager) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.current != nil {
		slog.DebugContext(m.ctx, "selection cleared", "key", m.current.Key())
	}

	m.current = nil
}
