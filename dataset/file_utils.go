package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func OpenPath(path string) (*os.File, error) {
	var err error

	var file *os.File

	if filepath.IsAbs(path) {
		slog.Info("Opening absolute path", "path", path)
		file, err = os.Open(path)
	} else {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("could not resolve %s: %w", path, wdErr)
		}

		slog.Info("Opening relative path", "path", path, "dir", wd)
		file, err = os.Open(filepath.Join(wd, path))
	}

	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

// NameFromPath derives a dataset name from a file name: "data/sales.csv" -> "sales".
func NameFromPath(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
