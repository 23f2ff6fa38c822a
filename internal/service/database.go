package service

import (
	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/repository"
)

// DatabaseService 文档存储的统一出口
// 只做转发，上游（认证、接口层）通过它使用稳定的操作名，自身不含业务逻辑
type DatabaseService struct {
	repos *repository.Repositories
}

func NewDatabaseService(repos *repository.Repositories) *DatabaseService {
	return &DatabaseService{repos: repos}
}

// ---- 收藏 ----

func (s *DatabaseService) IsFavorite(userID, movieID string) bool {
	return s.repos.Favorite.IsFavorited(userID, movieID)
}

func (s *DatabaseService) GetFavoriteDoc(userID, movieID string) *model.Favorite {
	return s.repos.Favorite.Find(userID, movieID)
}

func (s *DatabaseService) ToggleFavorite(userID string, movie model.MovieRef) (*model.ToggleResult, error) {
	return s.repos.Favorite.Toggle(userID, movie)
}

func (s *DatabaseService) GetFavorites(userID string) ([]model.Favorite, error) {
	return s.repos.Favorite.ListByUser(userID)
}

// ---- 影评 ----

func (s *DatabaseService) AddReview(userID, movieID string, rating int, text string) (*model.Review, error) {
	return s.repos.Review.Add(userID, movieID, rating, text)
}

func (s *DatabaseService) GetReviews(movieID string) []model.Review {
	return s.repos.Review.ListByMovie(movieID)
}

// ---- 搜索 / 热门 ----

func (s *DatabaseService) UpdateSearchCount(term string, movie model.MovieRef) error {
	return s.repos.Search.UpdateCount(term, movie)
}

func (s *DatabaseService) GetTrendingMovies() []model.Search {
	return s.repos.Search.GetTrending()
}
