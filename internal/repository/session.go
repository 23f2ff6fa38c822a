package repository

import (
	"encoding/json"
	"log"

	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/model"
)

// SessionRepository 单条会话记录的存取
// 会话不是序列，整条覆盖写在独立键下，不走集合编解码
type SessionRepository struct {
	store kv.Store
}

func NewSessionRepository(store kv.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Store 覆盖写入当前会话
func (r *SessionRepository) Store(user *model.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(keySession, string(data))
}

// Get 读取当前会话；不存在或数据损坏时返回 nil
func (r *SessionRepository) Get() *model.SessionUser {
	raw, ok, err := r.store.Get(keySession)
	if err != nil {
		log.Printf("[存储] 读取会话失败: %v", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var user model.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("[存储] 解析会话失败: %v", err)
		return nil
	}
	return &user
}

// Clear 删除会话键
func (r *SessionRepository) Clear() error {
	return r.store.Remove(keySession)
}
