package repository

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/utils"
)

type SearchRepository struct {
	store kv.Store
}

func NewSearchRepository(store kv.Store) *SearchRepository {
	return &SearchRepository{store: store}
}

// normalizeTerm 归一化搜索词：去首尾空白、连续空白压成单个空格、转小写
func normalizeTerm(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

// UpdateCount 累加搜索词的计数
// 归一化后不足 2 个字符的词静默忽略，不算错误也不产生任何写入。
// 已有记录累加计数并刷新指向的影片（movieId/title/poster），
// 但 CreatedAt 保持首次写入值不变；没有记录则以 count=1 新建
func (r *SearchRepository) UpdateCount(term string, movie model.MovieRef) error {
	q := normalizeTerm(term)
	if utf8.RuneCountInString(q) < 2 {
		return nil
	}

	searches := loadCollection[model.Search](r.store, keySearches)
	for i := range searches {
		if searches[i].SearchTerm == q {
			searches[i].Count++
			searches[i].MovieID = movie.ID
			if movie.Title != "" {
				searches[i].Title = movie.Title
			}
			if movie.PosterPath != "" {
				searches[i].PosterURL = posterURL(movie.PosterPath)
			}
			return saveCollection(r.store, keySearches, searches)
		}
	}

	now := time.Now()
	searches = append(searches, model.Search{
		ID:         fmt.Sprintf("search_%d_%s", now.UnixMilli(), utils.RandomSuffix()),
		SearchTerm: q,
		MovieID:    movie.ID,
		Count:      1,
		Title:      movie.Title,
		PosterURL:  posterURL(movie.PosterPath),
		CreatedAt:  now,
	})
	return saveCollection(r.store, keySearches, searches)
}

// GetTrending 按 movieId 聚合全部搜索记录，返回热度前 5 的影片
// 计数取各词条之和，展示字段取创建时间最新那条词条的值；
// 结果按计数倒序，计数相同时按创建时间倒序。
// 聚合每次调用全量重算，不做缓存
func (r *SearchRepository) GetTrending() []model.Search {
	searches := loadCollection[model.Search](r.store, keySearches)

	agg := make(map[string]*model.Search)
	for _, s := range searches {
		prev, ok := agg[s.MovieID]
		if !ok {
			entry := s
			entry.ID = "agg_" + s.MovieID
			agg[s.MovieID] = &entry
			continue
		}
		prev.Count += s.Count
		if s.CreatedAt.After(prev.CreatedAt) {
			prev.SearchTerm = s.SearchTerm
			prev.Title = s.Title
			prev.PosterURL = s.PosterURL
			prev.CreatedAt = s.CreatedAt
		}
	}

	result := make([]model.Search, 0, len(agg))
	for _, entry := range agg {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > 5 {
		result = result[:5]
	}
	return result
}
