package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract 所有后端共用的契约测试
func storeContract(t *testing.T, store Store) {
	t.Helper()

	// 不存在的键
	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	// 写入后可读回
	require.NoError(t, store.Set("k1", "v1"))
	value, ok, err := store.Get("k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	// 覆盖写
	require.NoError(t, store.Set("k1", "v2"))
	value, _, _ = store.Get("k1")
	assert.Equal(t, "v2", value)

	// 空串也是合法值
	require.NoError(t, store.Set("k2", ""))
	value, ok, err = store.Get("k2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", value)

	// 删除
	require.NoError(t, store.Remove("k1"))
	_, ok, _ = store.Get("k1")
	assert.False(t, ok)

	// 删除不存在的键不报错
	require.NoError(t, store.Remove("missing"))

	// 批量删除
	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))
	require.NoError(t, store.Set("c", "3"))
	require.NoError(t, store.RemoveMany([]string{"a", "b", "missing"}))
	_, ok, _ = store.Get("a")
	assert.False(t, ok)
	_, ok, _ = store.Get("b")
	assert.False(t, ok)
	value, ok, _ = store.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	// 空键列表
	require.NoError(t, store.RemoveMany(nil))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestSqliteStore(t *testing.T) {
	store, err := NewSqliteStore(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer store.Close()

	storeContract(t, store)
}

func TestSqliteStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := NewSqliteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Close())

	// 重新打开后数据仍在
	reopened, err := NewSqliteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestFactory(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := New("memory", "", "")
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("sqlite is the default", func(t *testing.T) {
		store, err := New("", t.TempDir(), "")
		require.NoError(t, err)
		assert.IsType(t, &SqliteStore{}, store)
		store.(*SqliteStore).Close()
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New("cassandra", "", "")
		assert.Error(t, err)
	})
}
