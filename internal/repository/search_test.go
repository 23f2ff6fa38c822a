package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviexplorer/internal/model"
)

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "fight club", normalizeTerm("  Fight   Club  "))
	assert.Equal(t, "fight club", normalizeTerm("fight\tclub"))
	assert.Equal(t, "", normalizeTerm("   "))
}

func TestUpdateCountShortTermIsNoOp(t *testing.T) {
	repos, store := newTestRepos(t)

	seeded := `[{"_id":"search_1","searchTerm":"dune","movie_id":"438631","count":3,"title":"Dune","createdAt":"2026-03-01T12:00:00Z"}]`
	require.NoError(t, store.Set(keySearches, seeded))

	ref := model.MovieRef{ID: "1", Title: "Whatever"}
	require.NoError(t, repos.Search.UpdateCount("a", ref))
	require.NoError(t, repos.Search.UpdateCount("  x  ", ref))
	require.NoError(t, repos.Search.UpdateCount("", ref))

	// 集合逐字节保持不变
	raw, _, _ := store.Get(keySearches)
	assert.Equal(t, seeded, raw)
}

func TestUpdateCountCreatesThenIncrements(t *testing.T) {
	repos, store := newTestRepos(t)

	require.NoError(t, repos.Search.UpdateCount("  Fight   Club ", model.MovieRef{
		ID: "550", Title: "Fight Club", PosterPath: "/a.jpg",
	}))

	searches := loadCollection[model.Search](store, keySearches)
	require.Len(t, searches, 1)
	assert.Equal(t, "fight club", searches[0].SearchTerm)
	assert.Equal(t, 1, searches[0].Count)
	assert.Equal(t, "550", searches[0].MovieID)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/a.jpg", searches[0].PosterURL)
	firstCreatedAt := searches[0].CreatedAt

	// 同一个归一化词条再次搜索：计数加一，影片指向刷新，创建时间冻结
	require.NoError(t, repos.Search.UpdateCount("FIGHT CLUB", model.MovieRef{
		ID: "551", Title: "Fight Club (1999)", PosterPath: "/b.jpg",
	}))

	searches = loadCollection[model.Search](store, keySearches)
	require.Len(t, searches, 1)
	assert.Equal(t, 2, searches[0].Count)
	assert.Equal(t, "551", searches[0].MovieID)
	assert.Equal(t, "Fight Club (1999)", searches[0].Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/b.jpg", searches[0].PosterURL)
	assert.True(t, searches[0].CreatedAt.Equal(firstCreatedAt))
}

func TestUpdateCountIncrementKeepsFieldsWhenRefIsPartial(t *testing.T) {
	repos, store := newTestRepos(t)

	require.NoError(t, repos.Search.UpdateCount("dune", model.MovieRef{
		ID: "438631", Title: "Dune", PosterPath: "/dune.jpg",
	}))

	// 引用缺标题和海报时，旧值保留
	require.NoError(t, repos.Search.UpdateCount("dune", model.MovieRef{ID: "438631"}))

	searches := loadCollection[model.Search](store, keySearches)
	require.Len(t, searches, 1)
	assert.Equal(t, 2, searches[0].Count)
	assert.Equal(t, "Dune", searches[0].Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/dune.jpg", searches[0].PosterURL)
}

func TestGetTrendingAggregatesByMovie(t *testing.T) {
	repos, store := newTestRepos(t)

	// 两个不同词条指向同一部影片：计数相加，
	// 展示字段取创建时间较新那条（海报 /b.jpg）
	require.NoError(t, saveCollection(store, keySearches, []model.Search{
		{ID: "search_1", SearchTerm: "matrix", MovieID: "5", Count: 1, Title: "The Matrix", PosterURL: "https://image.tmdb.org/t/p/w500/a.jpg", CreatedAt: at(0)},
		{ID: "search_2", SearchTerm: "the matrix", MovieID: "5", Count: 1, Title: "The Matrix", PosterURL: "https://image.tmdb.org/t/p/w500/b.jpg", CreatedAt: at(10)},
	}))

	trending := repos.Search.GetTrending()
	require.Len(t, trending, 1)
	assert.Equal(t, "5", trending[0].MovieID)
	assert.Equal(t, 2, trending[0].Count)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/b.jpg", trending[0].PosterURL)
	assert.Equal(t, "the matrix", trending[0].SearchTerm)
	assert.Equal(t, "agg_5", trending[0].ID)
}

func TestGetTrendingTopFiveOrdering(t *testing.T) {
	repos, store := newTestRepos(t)

	var seeds []model.Search
	for i := 1; i <= 7; i++ {
		seeds = append(seeds, model.Search{
			ID:         fmt.Sprintf("search_%d", i),
			SearchTerm: fmt.Sprintf("term %d", i),
			MovieID:    fmt.Sprintf("%d", i),
			Count:      i,
			Title:      fmt.Sprintf("Movie %d", i),
			CreatedAt:  at(i),
		})
	}
	// 与 movie 7 同计数但创建时间更新的记录，平手时应排在前面
	seeds = append(seeds, model.Search{
		ID: "search_tie", SearchTerm: "tie", MovieID: "8", Count: 7,
		Title: "Movie 8", CreatedAt: at(100),
	})
	require.NoError(t, saveCollection(store, keySearches, seeds))

	trending := repos.Search.GetTrending()

	// 不超过 5 条
	require.Len(t, trending, 5)

	// 计数严格倒序，平手按时间倒序
	for i := 1; i < len(trending); i++ {
		prev, cur := trending[i-1], trending[i]
		if prev.Count == cur.Count {
			assert.True(t, !prev.CreatedAt.Before(cur.CreatedAt))
		} else {
			assert.Greater(t, prev.Count, cur.Count)
		}
	}
	assert.Equal(t, "8", trending[0].MovieID)
	assert.Equal(t, "7", trending[1].MovieID)
}

func TestGetTrendingEmpty(t *testing.T) {
	repos, _ := newTestRepos(t)
	assert.Empty(t, repos.Search.GetTrending())
}
