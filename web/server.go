package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/datanav/db"
	"github.com/dasdy/datanav/web/routes"
)

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// BuildServer loads the dataset and wires the handlers for it.
func BuildServer(storage db.Storage, dataset string, assetsDir string, dev bool) (*http.ServeMux, error) {
	handler := routes.NewServerHandler(storage, dataset)

	if err := handler.Reload(); err != nil {
		return nil, fmt.Errorf("could not load dataset %s: %w", dataset, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/assets/",
		disableCacheInDevMode(dev,
			http.StripPrefix("/assets",
				http.FileServer(http.Dir(assetsDir)))))

	mux.Handle("/navigate", http.HandlerFunc(handler.NavigateHandle))
	mux.Handle("/settings", http.HandlerFunc(handler.SettingsHandle))
	mux.Handle("/update", http.HandlerFunc(handler.UpdateHandle))
	mux.Handle("/{$}", http.HandlerFunc(handler.VisualHandle))

	return mux, nil
}

func StartServer(port int, storage db.Storage, dataset string, assetsDir string, dev bool) error {
	mux, err := BuildServer(storage, dataset, assetsDir, dev)
	if err != nil {
		return err
	}

	slog.Info("Running interface", "port", port, "dataset", dataset, "dev", dev)

	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
