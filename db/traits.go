package db

import (
	"github.com/dasdy/datanav/model"
)

// Storage keeps datasets, their configuration objects and the selection history.
type Storage interface {
	StoreDataset(name string, view *model.DataView) error
	LoadDataView(name string) (*model.DataView, error)
	Datasets() ([]string, error)
	StoreObjects(name string, objects model.Objects) error
	LoadObjects(name string) (model.Objects, error)
	RecordSelection(dataset, key string) error
	SelectionHistory(dataset string, limit int) ([]model.SelectionRecord, error)
	Close()
}
