package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache 全局缓存实例，存放影片详情等短期数据
var Cache *cache.Cache

// InitCache 初始化全局缓存
func InitCache() {
	// 默认过期时间10分钟，清理间隔30分钟
	Cache = cache.New(10*time.Minute, 30*time.Minute)
}

// CacheGet 获取缓存值
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet 设置缓存值
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

// CacheClear 清空所有缓存
func CacheClear() {
	Cache.Flush()
}

// ttlItem 包装缓存值并附带过期时间
type ttlItem[T any] struct {
	value     T
	expiredAt time.Time
}

// TTLCache 带过期时间的 LRU 缓存，用于搜索结果
type TTLCache[T any] struct {
	storage *lru.Cache[string, ttlItem[T]]
	ttl     time.Duration
}

// NewTTLCache size 是最大缓存条数，ttl 是数据有效期
func NewTTLCache[T any](size int, ttl time.Duration) *TTLCache[T] {
	// lru.New 线程安全
	c, _ := lru.New[string, ttlItem[T]](size)
	return &TTLCache[T]{storage: c, ttl: ttl}
}

// Set 写入（已存在则更新）
func (c *TTLCache[T]) Set(key string, value T) {
	c.storage.Add(key, ttlItem[T]{
		value:     value,
		expiredAt: time.Now().Add(c.ttl),
	})
}

// Get 读取，过期条目当场剔除
func (c *TTLCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.expiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.value, true
}

// Remove 删除指定键
func (c *TTLCache[T]) Remove(key string) {
	c.storage.Remove(key)
}

// Purge 清空
func (c *TTLCache[T]) Purge() {
	c.storage.Purge()
}
