package datanav

import (
	"fmt"
	"strings"

	"github.com/dasdy/datanav/db"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/selection"
	"github.com/dasdy/datanav/viewmodel"
)

func openStorage(showProgress bool) (*db.SQLiteStorage, error) {
	storage, err := db.NewStorageFromPath(storagePath, showProgress)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
	}

	return storage, nil
}

// resolveDataset returns name, or the only stored dataset when name is empty.
func resolveDataset(storage db.Storage, name string) (string, error) {
	if name != "" {
		return name, nil
	}

	names, err := storage.Datasets()
	if err != nil {
		return "", fmt.Errorf("could not list datasets: %w", err)
	}

	switch len(names) {
	case 0:
		return "", fmt.Errorf("no datasets in %s, run import first", storagePath)
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("several datasets in %s, pick one with --dataset: %s",
			storagePath, strings.Join(names, ", "))
	}
}

func buildViewModel(storage db.Storage, name string) (model.ViewModel, error) {
	view, err := storage.LoadDataView(name)
	if err != nil {
		return model.ViewModel{}, fmt.Errorf("could not load dataset %s: %w", name, err)
	}

	objects, err := storage.LoadObjects(name)
	if err != nil {
		return model.ViewModel{}, fmt.Errorf("could not load objects of %s: %w", name, err)
	}

	return viewmodel.Build(view, objects, selection.Builder{Dataset: name}), nil
}

func parseSortedBy(s string) (model.SortedBy, error) {
	switch strings.ToLower(s) {
	case "":
		return model.SortedByNone, nil
	case "h", "horizontal":
		return model.SortedByHorizontal, nil
	case "v", "vertical":
		return model.SortedByVertical, nil
	default:
		return model.SortedByNone, fmt.Errorf("unknown sort order %q, expected h or v", s)
	}
}
