// Package kv 定义底层键值后端的接口及各实现。
// 值是不透明字符串，上层的集合编解码在 repository 包里完成。
package kv

// Store 键值后端接口
type Store interface {
	// Get 返回键对应的值；键不存在时 ok 为 false 且不报错
	Get(key string) (value string, ok bool, err error)

	// Set 无条件覆盖写入
	Set(key, value string) error

	// Remove 删除单个键，键不存在时不报错
	Remove(key string) error

	// RemoveMany 批量删除
	RemoveMany(keys []string) error
}
