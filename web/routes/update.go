package routes

import (
	"log/slog"
	"net/http"
)

// UpdateHandle re-reads the dataset from storage, e.g. after a new import.
func (s *ServerHandler) UpdateHandle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if err := s.Reload(); err != nil {
		slog.ErrorContext(s.ctx, "Could not reload dataset", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
