package model

import (
	"time"
)

// User 用户记录
// 整个集合作为一个 JSON 数组持久化在单个键下，字段名与存储格式保持一致
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserUpdate 用户资料的部分更新，nil 字段表示不修改
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// SessionUser 会话槽中保存的用户信息
type SessionUser struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Favorite 收藏记录，(userId, movieId) 组合键唯一
type Favorite struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	MovieID   string    `json:"movieId"`
	Title     string    `json:"title"`
	PosterURL string    `json:"poster_url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review 影评记录，同一 (userId, movieId) 允许多条
type Review struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	MovieID   string    `json:"movieId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	UserName  string    `json:"userName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Search 搜索计数记录，每个归一化搜索词一条
// CreatedAt 在首次写入后冻结，累加计数时不会更新
type Search struct {
	ID         string    `json:"_id"`
	SearchTerm string    `json:"searchTerm"`
	MovieID    string    `json:"movie_id"`
	Count      int       `json:"count"`
	Title      string    `json:"title"`
	PosterURL  string    `json:"poster_url,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MovieRef 上游目录传入的影片引用，用于构造收藏与搜索记录
type MovieRef struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path,omitempty"`
}

// ToggleResult 收藏切换结果：Removed 表示本次走的是删除分支
type ToggleResult struct {
	Removed bool      `json:"removed"`
	Doc     *Favorite `json:"doc,omitempty"`
}
