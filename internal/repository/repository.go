// Package repository 在键值后端之上实现多集合文档存储。
// 每个集合是一个 JSON 数组，整体存放在一个固定键下；
// 所有变更都走“整读 → 内存修改 → 整写”的流程，不支持局部写入。
// 包内不做跨操作加锁：并发写同一集合时后完成者覆盖先完成者，
// 需要更强保证的调用方自行串行化。
package repository

import (
	"errors"

	"github.com/user/moviexplorer/internal/kv"
)

// 各集合与会话的存储键
const (
	keyUsers     = "movie_explorer_users"
	keyFavorites = "movie_explorer_favorites"
	keyReviews   = "movie_explorer_reviews"
	keySearches  = "movie_explorer_searches"
	keySession   = "movie_explorer_session"
)

// posterBaseURL 海报图片地址前缀，拼接目录返回的 poster_path
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

var (
	// ErrDuplicateEmail 注册邮箱已存在
	ErrDuplicateEmail = errors.New("user already exists with this email")
	// ErrUserNotFound 更新的用户不存在
	ErrUserNotFound = errors.New("user not found")
)

// posterURL 由 poster_path 构造完整海报地址，path 为空时返回空串
func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return posterBaseURL + path
}

// Repositories 仓库集合
type Repositories struct {
	Store    kv.Store
	User     *UserRepository
	Favorite *FavoriteRepository
	Review   *ReviewRepository
	Search   *SearchRepository
	Session  *SessionRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(store kv.Store) *Repositories {
	user := NewUserRepository(store)
	return &Repositories{
		Store:    store,
		User:     user,
		Favorite: NewFavoriteRepository(store),
		Review:   NewReviewRepository(store, user),
		Search:   NewSearchRepository(store),
		Session:  NewSessionRepository(store),
	}
}

// ClearAllData 删除全部集合键和会话键
func (r *Repositories) ClearAllData() error {
	return r.Store.RemoveMany([]string{
		keyUsers,
		keyFavorites,
		keyReviews,
		keySearches,
		keySession,
	})
}
