package routes_test

import (
	"testing"

	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/web/routes"
	"github.com/stretchr/testify/require"
)

const testDataset = "sales"

// SimpleStorageMock is a simple manual mock implementation of the Storage interface.
type SimpleStorageMock struct {
	View          *model.DataView
	Objects       model.Objects
	History       []model.SelectionRecord
	Recorded      []string
	StoredObjects model.Objects

	LoadError    error
	StoreError   error
	HistoryError error

	CallCount      int
	StoreCallCount int
}

func (m *SimpleStorageMock) StoreDataset(_ string, view *model.DataView) error {
	m.View = view

	return m.StoreError
}

func (m *SimpleStorageMock) LoadDataView(_ string) (*model.DataView, error) {
	m.CallCount++

	return m.View, m.LoadError
}

func (m *SimpleStorageMock) Datasets() ([]string, error) {
	return []string{testDataset}, nil
}

func (m *SimpleStorageMock) StoreObjects(_ string, objects model.Objects) error {
	m.StoreCallCount++
	if m.StoreError != nil {
		return m.StoreError
	}

	m.StoredObjects = objects

	return nil
}

func (m *SimpleStorageMock) LoadObjects(_ string) (model.Objects, error) {
	return m.Objects, nil
}

func (m *SimpleStorageMock) RecordSelection(_ string, key string) error {
	m.Recorded = append(m.Recorded, key)

	return nil
}

func (m *SimpleStorageMock) SelectionHistory(_ string, _ int) ([]model.SelectionRecord, error) {
	return m.History, m.HistoryError
}

func (m *SimpleStorageMock) Close() {
	// No-op for testing
}

// salesView is the grid A/X, A/Y, B/X, B/Y with Region outer.
func salesView() *model.DataView {
	region := model.Column{DisplayName: "Region", Roles: map[model.Role]bool{model.RoleHorizontal: true}}
	product := model.Column{DisplayName: "Product", Roles: map[model.Role]bool{model.RoleVertical: true}}

	return &model.DataView{
		Metadata: []model.Column{region, product},
		Categories: []model.CategoryColumn{
			{Source: region, Values: []any{"A", "A", "B", "B"}},
			{Source: product, Values: []any{"X", "Y", "X", "Y"}},
		},
	}
}

// setupServerHandler returns a handler with salesView already loaded.
func setupServerHandler(t *testing.T, objects model.Objects) (*routes.ServerHandler, *SimpleStorageMock) {
	t.Helper()

	storage := &SimpleStorageMock{View: salesView(), Objects: objects}
	handler := routes.NewServerHandler(storage, testDataset)

	require.NoError(t, handler.Reload())

	return handler, storage
}
