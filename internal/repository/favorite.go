package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/model"
)

type FavoriteRepository struct {
	store kv.Store
}

func NewFavoriteRepository(store kv.Store) *FavoriteRepository {
	return &FavoriteRepository{store: store}
}

// Toggle 切换收藏状态
// (userId, movieId) 已存在则删除并返回 Removed=true，
// 否则追加新纪录并返回 Removed=false 和新文档
func (r *FavoriteRepository) Toggle(userID string, movie model.MovieRef) (*model.ToggleResult, error) {
	favorites := loadCollection[model.Favorite](r.store, keyFavorites)

	for i := range favorites {
		if favorites[i].UserID == userID && favorites[i].MovieID == movie.ID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			if err := saveCollection(r.store, keyFavorites, favorites); err != nil {
				return nil, err
			}
			return &model.ToggleResult{Removed: true}, nil
		}
	}

	now := time.Now()
	doc := model.Favorite{
		ID:        fmt.Sprintf("fav_%s_%s_%d", userID, movie.ID, now.UnixMilli()),
		UserID:    userID,
		MovieID:   movie.ID,
		Title:     movie.Title,
		PosterURL: posterURL(movie.PosterPath),
		CreatedAt: now,
	}
	favorites = append(favorites, doc)

	if err := saveCollection(r.store, keyFavorites, favorites); err != nil {
		return nil, err
	}
	return &model.ToggleResult{Removed: false, Doc: &doc}, nil
}

// IsFavorited 检查是否已收藏
func (r *FavoriteRepository) IsFavorited(userID, movieID string) bool {
	favorites := loadCollection[model.Favorite](r.store, keyFavorites)
	for i := range favorites {
		if favorites[i].UserID == userID && favorites[i].MovieID == movieID {
			return true
		}
	}
	return false
}

// Find 按组合键取收藏记录，未找到返回 nil
func (r *FavoriteRepository) Find(userID, movieID string) *model.Favorite {
	favorites := loadCollection[model.Favorite](r.store, keyFavorites)
	for i := range favorites {
		if favorites[i].UserID == userID && favorites[i].MovieID == movieID {
			return &favorites[i]
		}
	}
	return nil
}

// ListByUser 获取用户收藏列表
// 按 movieId 去重时保留存储顺序中最早的一条（不是时间最新的一条）；
// 发现重复时把去重结果与其他用户的记录合并回写，相当于一次读触发的压缩。
// 返回结果按创建时间倒序排列，排序不影响去重的取舍
func (r *FavoriteRepository) ListByUser(userID string) ([]model.Favorite, error) {
	all := loadCollection[model.Favorite](r.store, keyFavorites)

	seen := make(map[string]bool)
	mine := make([]model.Favorite, 0)
	duplicates := 0
	for _, f := range all {
		if f.UserID != userID {
			continue
		}
		if seen[f.MovieID] {
			duplicates++
			continue
		}
		seen[f.MovieID] = true
		mine = append(mine, f)
	}

	if duplicates > 0 {
		merged := make([]model.Favorite, 0, len(all)-duplicates)
		for _, f := range all {
			if f.UserID != userID {
				merged = append(merged, f)
			}
		}
		merged = append(merged, mine...)
		if err := saveCollection(r.store, keyFavorites, merged); err != nil {
			return nil, err
		}
	}

	sort.Slice(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}
