package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/datanav/navigator"
)

func (s *ServerHandler) NavigateHandle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	command, err := navigator.ParseCommand(r.URL.Query().Get("command"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.lock.Lock()
	moved := s.Navigator.Dispatch(command)
	cursor := s.Navigator.Cursor()
	s.lock.Unlock()

	slog.DebugContext(s.ctx, "navigate", "command", command, "moved", moved, "cursor", cursor)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
