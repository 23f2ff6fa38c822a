package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomSuffix 生成 8 位十六进制随机后缀，用于拼接记录 ID
func RandomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 基本不会失败，兜底返回固定串避免空 ID
		return "00000000"
	}
	return hex.EncodeToString(buf)
}
