package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	_, ok, err := storage.GetItem(ctx, "page")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.SetItem(ctx, "page", "3"))
	value, ok, err := storage.GetItem(ctx, "page")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	require.NoError(t, storage.RemoveItem(ctx, "page"))
	require.NoError(t, storage.RemoveItem(ctx, "page"))
	_, ok, _ = storage.GetItem(ctx, "page")
	assert.False(t, ok)
}

func TestFileStorage(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "storage.json")

	storage, err := NewFileStorage(ctx, location)
	require.NoError(t, err)
	assert.Empty(t, storage.Keys())

	require.NoError(t, storage.SetItem(ctx, "keyword", `"markdown"`))
	require.NoError(t, storage.SetItem(ctx, "page", "2"))
	require.NoError(t, storage.RemoveItem(ctx, "page"))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, map[string]string{"keyword": `"markdown"`}, onDisk)

	reopened, err := NewFileStorage(ctx, location)
	require.NoError(t, err)
	value, ok, err := reopened.GetItem(ctx, "keyword")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"markdown"`, value)
}

func TestFileStorage_Mem(t *testing.T) {
	ctx := context.Background()
	location := "mem://localhost/pybo/storage_test.json"

	storage, err := NewFileStorage(ctx, location)
	require.NoError(t, err)
	require.NoError(t, storage.SetItem(ctx, "is_login", "true"))

	reopened, err := NewFileStorage(ctx, location)
	require.NoError(t, err)
	value, ok, err := reopened.GetItem(ctx, "is_login")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestFileStorage_Corrupted(t *testing.T) {
	location := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o600))
	_, err := NewFileStorage(context.Background(), location)
	assert.Error(t, err)
}

type opaqueStorage struct {
	Storage
}

func TestKeys(t *testing.T) {
	ctx := context.Background()
	file, err := NewFileStorage(ctx, filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)

	var useCases = []struct {
		description string
		storage     Storage
		expect      []string
	}{
		{description: "memory", storage: NewMemoryStorage(), expect: []string{"keyword", "page"}},
		{description: "file", storage: file, expect: []string{"keyword", "page"}},
		{description: "not listable", storage: &opaqueStorage{Storage: NewMemoryStorage()}},
	}
	for _, useCase := range useCases {
		require.NoError(t, useCase.storage.SetItem(ctx, "page", "1"), useCase.description)
		require.NoError(t, useCase.storage.SetItem(ctx, "keyword", `""`), useCase.description)
		assert.Equal(t, useCase.expect, Keys(useCase.storage), useCase.description)
	}
}
