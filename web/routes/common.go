package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/dasdy/datanav/db"
	"github.com/dasdy/datanav/logging"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/navigator"
	"github.com/dasdy/datanav/selection"
	"github.com/dasdy/datanav/viewmodel"
)

// HistoryLimit is how many past selections the page lists.
const HistoryLimit = 10

// ServerHandler holds all dependencies needed for the web server handlers.
// net/http serves requests concurrently, so every access to the navigator
// and the loaded data goes through lock.
type ServerHandler struct {
	Storage   db.Storage
	Dataset   string
	Navigator *navigator.Navigator
	Selection *selection.Manager

	lock    sync.Mutex
	view    *model.DataView
	objects model.Objects
	ctx     context.Context
}

func NewServerHandler(storage db.Storage, dataset string) *ServerHandler {
	manager := selection.NewManager(dataset, storage)

	return &ServerHandler{
		Storage:   storage,
		Dataset:   dataset,
		Navigator: navigator.New(manager),
		Selection: manager,
		ctx:       logging.DatasetCtx(logging.PackageCtx("routes"), dataset),
	}
}

// Reload reads the dataset and its objects from storage and rebuilds the view model.
func (s *ServerHandler) Reload() error {
	view, err := s.Storage.LoadDataView(s.Dataset)
	if err != nil {
		return fmt.Errorf("could not load dataset %s: %w", s.Dataset, err)
	}

	objects, err := s.Storage.LoadObjects(s.Dataset)
	if err != nil {
		return fmt.Errorf("could not load objects of %s: %w", s.Dataset, err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.view = view
	s.objects = objects
	s.rebuild()

	return nil
}

// rebuild must be called with lock held.
func (s *ServerHandler) rebuild() {
	vm := viewmodel.Build(s.view, s.objects, selection.Builder{Dataset: s.Dataset})
	s.Navigator.Update(vm)

	slog.InfoContext(s.ctx, "view model rebuilt",
		"points", vm.Len(),
		"axes", vm.NumberOfAxis,
		"cursor", s.Navigator.Cursor())
}

// snapshot returns the state a page render needs.
func (s *ServerHandler) snapshot() (model.ViewModel, int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.Navigator.ViewModel(), s.Navigator.Cursor()
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}

	w.Header().Set("Allow", method)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

	return false
}
