package service

import (
	"fmt"
	"net/url"
	"time"

	"github.com/user/moviexplorer/internal/config"
	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/utils"
	"golang.org/x/sync/singleflight"
)

// CatalogService TMDB 影片目录客户端
// 只被接口层调用，向存储层提供 movieId/title/poster 三元组；
// 文档存储本身从不反向调用这里
type CatalogService struct {
	client      *utils.HTTPClient
	group       singleflight.Group
	searchCache *utils.TTLCache[[]model.CatalogMovie]
}

func NewCatalogService(cfg *config.Config) *CatalogService {
	return &CatalogService{
		client:      utils.NewHTTPClient(cfg.TMDBToken, 10*time.Second),
		searchCache: utils.NewTTLCache[[]model.CatalogMovie](500, time.Hour),
	}
}

type searchResponse struct {
	Results []model.CatalogMovie `json:"results"`
}

// SearchMovies 按关键字搜索影片
// 命中缓存直接返回；未命中时用 singleflight 合并并发的相同查询
func (s *CatalogService) SearchMovies(query string) ([]model.CatalogMovie, error) {
	if cached, ok := s.searchCache.Get(query); ok {
		return cached, nil
	}

	val, err, _ := s.group.Do("search:"+query, func() (interface{}, error) {
		endpoint := fmt.Sprintf(
			"https://api.themoviedb.org/3/search/movie?query=%s&include_adult=false",
			url.QueryEscape(query),
		)
		var resp searchResponse
		if err := s.client.GetJSON(endpoint, &resp); err != nil {
			return nil, fmt.Errorf("搜索影片失败: %w", err)
		}
		s.searchCache.Set(query, resp.Results)
		return resp.Results, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]model.CatalogMovie), nil
}

// GetMovieDetails 获取影片详情，结果走全局缓存
func (s *CatalogService) GetMovieDetails(movieID int) (*model.CatalogMovieDetail, error) {
	cacheKey := fmt.Sprintf("movie:%d", movieID)
	if cached, found := utils.CacheGet(cacheKey); found {
		if detail, ok := cached.(*model.CatalogMovieDetail); ok {
			return detail, nil
		}
	}

	val, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		endpoint := fmt.Sprintf("https://api.themoviedb.org/3/movie/%d", movieID)
		var detail model.CatalogMovieDetail
		if err := s.client.GetJSON(endpoint, &detail); err != nil {
			return nil, fmt.Errorf("获取影片详情失败: %w", err)
		}
		utils.CacheSet(cacheKey, &detail, 30*time.Minute)
		return &detail, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.CatalogMovieDetail), nil
}
