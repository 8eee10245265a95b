package datanav

import (
	"testing"

	"github.com/dasdy/datanav/db"
	"github.com/dasdy/datanav/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageWith(t *testing.T, names ...string) *db.SQLiteStorage {
	t.Helper()

	storage, err := db.NewStorageFromPath(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	region := model.Column{DisplayName: "Region", Roles: map[model.Role]bool{model.RoleHorizontal: true}}

	for _, name := range names {
		require.NoError(t, storage.StoreDataset(name, &model.DataView{
			Metadata:   []model.Column{region},
			Categories: []model.CategoryColumn{{Source: region, Values: []any{"A", "B"}}},
		}))
	}

	return storage
}

func TestResolveDataset(t *testing.T) {
	t.Run("explicit name wins", func(t *testing.T) {
		name, err := resolveDataset(storageWith(t, "sales", "costs"), "costs")
		require.NoError(t, err)
		assert.Equal(t, "costs", name)
	})

	t.Run("single dataset is picked", func(t *testing.T) {
		name, err := resolveDataset(storageWith(t, "sales"), "")
		require.NoError(t, err)
		assert.Equal(t, "sales", name)
	})

	t.Run("empty storage", func(t *testing.T) {
		_, err := resolveDataset(storageWith(t), "")
		assert.ErrorContains(t, err, "run import first")
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := resolveDataset(storageWith(t, "sales", "costs"), "")
		assert.ErrorContains(t, err, "costs, sales")
	})
}

func TestBuildViewModel(t *testing.T) {
	storage := storageWith(t, "sales")

	vm, err := buildViewModel(storage, "sales")
	require.NoError(t, err)

	assert.Equal(t, 2, vm.Len())
	assert.Equal(t, model.SortedByHorizontal, vm.SortedBy)
	assert.Equal(t, "sales/Region/1", vm.Horizontal.IDs[1].Key())

	_, err = buildViewModel(storage, "missing")
	assert.ErrorIs(t, err, db.ErrUnknownDataset)
}

func TestParseSortedBy(t *testing.T) {
	tests := []struct {
		in   string
		want model.SortedBy
	}{
		{"", model.SortedByNone},
		{"h", model.SortedByHorizontal},
		{"Horizontal", model.SortedByHorizontal},
		{"v", model.SortedByVertical},
		{"vertical", model.SortedByVertical},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseSortedBy(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := parseSortedBy("diagonal")
	assert.Error(t, err)
}
