package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dasdy/datanav/settings"
	cs "github.com/dasdy/datanav/web/components"
)

// Checkboxes are absent from a submitted form when unchecked.
// Only posts carrying cs.SettingsFormMarker treat them as false.
var checkboxProperties = []string{
	settings.PropertyHorizontal,
	settings.PropertyVertical,
	settings.PropertyDiagonal,
}

// SettingsHandle lists the settings on GET and applies them on POST.
// A POST from the settings pane sets every missing checkbox to false.
// Other clients only change the properties they send.
func (s *ServerHandler) SettingsHandle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.enumerateSettings(w)
	case http.MethodPost:
		s.applySettings(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *ServerHandler) enumerateSettings(w http.ResponseWriter) {
	vm, _ := s.snapshot()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(settings.Enumerate(vm.Settings)); err != nil {
		slog.ErrorContext(s.ctx, "Could not encode settings", "error", err)
	}
}

func (s *ServerHandler) applySettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	fromPane := r.PostForm.Has(cs.SettingsFormMarker)

	values := make(map[string]string, len(checkboxProperties)+1)
	for _, name := range checkboxProperties {
		switch {
		case r.PostForm.Get(name) != "":
			values[name] = r.PostForm.Get(name)
		case fromPane:
			values[name] = "false"
		}
	}

	if incremental := r.PostForm.Get(settings.PropertyIncremental); incremental != "" {
		values[settings.PropertyIncremental] = incremental
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	objects, err := settings.Apply(s.objects, values)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := s.Storage.StoreObjects(s.Dataset, objects); err != nil {
		slog.ErrorContext(s.ctx, "Could not store settings", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	s.objects = objects
	s.rebuild()

	slog.InfoContext(s.ctx, "settings applied", "values", values)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
