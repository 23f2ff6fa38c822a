package kv

import (
	"fmt"
	"path/filepath"
)

// New 按后端名称创建 Store
//
// 支持的后端：
//
//	"sqlite"   - dataDir/explorer.db 下的 SQLite 文件（默认）
//	"postgres" - 通过 databaseURL 连接的 Postgres
//	"memory"   - 内存存储（测试用，不落盘）
func New(backend, dataDir, databaseURL string) (Store, error) {
	switch backend {
	case "sqlite", "":
		return NewSqliteStore(filepath.Join(dataDir, "explorer.db"))
	case "postgres":
		return NewPostgresStore(databaseURL)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("未知的存储后端: %q（支持 sqlite, postgres, memory）", backend)
	}
}
