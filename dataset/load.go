package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dasdy/datanav/model"
)

// Loaded is a dataset read from disk, ready to be stored.
type Loaded struct {
	Name    string
	View    *model.DataView
	Objects model.Objects
}

// Load reads a .yaml/.yml or .csv file. CSV options are ignored for YAML.
// The dataset name falls back to the file name.
func Load(path string, opts CSVOptions) (*Loaded, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	result := &Loaded{Name: NameFromPath(path), Objects: model.Objects{}}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := LoadYAML(file)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", path, err)
		}

		if f.Name != "" {
			result.Name = f.Name
		}

		result.View = f.DataView()

		if f.Objects != nil {
			result.Objects = f.Objects
		}
	case ".csv":
		view, err := LoadCSV(file, opts)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", path, err)
		}

		result.View = view
	default:
		return nil, fmt.Errorf("unsupported dataset file %s: expected .yaml, .yml or .csv", path)
	}

	return result, nil
}
