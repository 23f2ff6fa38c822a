package repository

import (
	"encoding/json"
	"log"

	"github.com/user/moviexplorer/internal/kv"
)

// loadCollection 读取整个集合
// 键不存在、后端读取失败或存量数据解析失败时一律降级为空集合：
// 空集合永远是合法状态，读路径不向调用方抛错
func loadCollection[T any](store kv.Store, key string) []T {
	raw, ok, err := store.Get(key)
	if err != nil {
		log.Printf("[存储] 读取 %s 失败: %v", key, err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[存储] 解析 %s 失败，按空集合处理: %v", key, err)
		return nil
	}
	return items
}

// saveCollection 序列化整个集合并覆盖写入，写入失败原样上抛
func saveCollection[T any](store kv.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(key, string(data))
}
