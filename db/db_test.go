package db_test

import (
	"testing"

	"github.com/dasdy/datanav/db"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryStorage(t *testing.T) *db.SQLiteStorage {
	t.Helper()

	storage, err := db.NewStorageFromPath(":memory:", false)
	require.NoError(t, err)

	t.Cleanup(storage.Close)

	return storage
}

func salesView() *model.DataView {
	region := model.Column{DisplayName: "Region", Roles: map[model.Role]bool{model.RoleHorizontal: true}}
	product := model.Column{DisplayName: "Product", Roles: map[model.Role]bool{model.RoleVertical: true}}
	amount := model.Column{DisplayName: "Amount", Roles: map[model.Role]bool{}}

	return &model.DataView{
		Metadata: []model.Column{region, product, amount},
		Categories: []model.CategoryColumn{
			{Source: region, Values: []any{"A", "A", "B", "B"}},
			{Source: product, Values: []any{"X", "Y", "X", 7}},
		},
	}
}

func TestStoreAndLoadDataset(t *testing.T) {
	t.Run("returns what was stored", func(t *testing.T) {
		storage := memoryStorage(t)

		require.NoError(t, storage.StoreDataset("sales", salesView()))

		view, err := storage.LoadDataView("sales")
		require.NoError(t, err)

		require.Len(t, view.Metadata, 3)
		assert.Equal(t, "Region", view.Metadata[0].DisplayName)
		assert.True(t, view.Metadata[0].HasRole(model.RoleHorizontal))
		assert.True(t, view.Metadata[1].HasRole(model.RoleVertical))
		assert.Empty(t, view.Metadata[2].Roles)

		require.Len(t, view.Categories, 2)
		assert.Equal(t, "Region", view.Categories[0].Source.DisplayName)
		assert.Equal(t, []any{"A", "A", "B", "B"}, view.Categories[0].Values)
		assert.Equal(t, []any{"X", "Y", "X", "7"}, view.Categories[1].Values)
	})

	t.Run("storing again replaces the dataset", func(t *testing.T) {
		storage := memoryStorage(t)

		require.NoError(t, storage.StoreDataset("sales", salesView()))

		smaller := salesView()
		smaller.Metadata = smaller.Metadata[:1]
		smaller.Categories = smaller.Categories[:1]
		smaller.Categories[0].Values = []any{"C"}

		require.NoError(t, storage.StoreDataset("sales", smaller))

		view, err := storage.LoadDataView("sales")
		require.NoError(t, err)

		assert.Len(t, view.Metadata, 1)
		require.Len(t, view.Categories, 1)
		assert.Equal(t, []any{"C"}, view.Categories[0].Values)
	})

	t.Run("empty category columns are kept", func(t *testing.T) {
		storage := memoryStorage(t)

		view := salesView()
		view.Categories[1].Values = []any{}

		require.NoError(t, storage.StoreDataset("sales", view))

		loaded, err := storage.LoadDataView("sales")
		require.NoError(t, err)

		require.Len(t, loaded.Categories, 2)
		assert.Empty(t, loaded.Categories[1].Values)
	})

	t.Run("unknown dataset", func(t *testing.T) {
		storage := memoryStorage(t)

		_, err := storage.LoadDataView("nope")

		require.ErrorIs(t, err, db.ErrUnknownDataset)
	})
}

func TestDatasets(t *testing.T) {
	storage := memoryStorage(t)

	names, err := storage.Datasets()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, storage.StoreDataset("zeta", salesView()))
	require.NoError(t, storage.StoreDataset("alpha", salesView()))

	names, err = storage.Datasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestObjects(t *testing.T) {
	storage := memoryStorage(t)

	objects, err := storage.LoadObjects("sales")
	require.NoError(t, err)
	assert.Empty(t, objects)

	require.NoError(t, storage.StoreObjects("sales", model.Objects{
		settings.ObjectName: {"horizontal": false, "diagonal": true, "incremental": 3},
	}))

	objects, err = storage.LoadObjects("sales")
	require.NoError(t, err)

	assert.Equal(t, false, objects[settings.ObjectName]["horizontal"])
	assert.Equal(t, float64(3), objects[settings.ObjectName]["incremental"])

	// JSON numbers still resolve to an integer step.
	resolved := settings.Resolve(objects)
	assert.Equal(t, 3, resolved.Incremental)
	assert.False(t, resolved.Horizontal)
	assert.False(t, resolved.Diagonal, "diagonal needs both directions")

	require.NoError(t, storage.StoreObjects("sales", model.Objects{}))

	objects, err = storage.LoadObjects("sales")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestSelectionHistory(t *testing.T) {
	storage := memoryStorage(t)

	require.NoError(t, storage.RecordSelection("sales", "sales/Region/0"))
	require.NoError(t, storage.RecordSelection("sales", "sales/Region/2"))
	require.NoError(t, storage.RecordSelection("other", "other/Product/1"))

	history, err := storage.SelectionHistory("sales", 10)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "sales/Region/2", history[0].Key)
	assert.Equal(t, "sales/Region/0", history[1].Key)
	assert.False(t, history[0].Timestamp.IsZero())

	history, err = storage.SelectionHistory("sales", 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
