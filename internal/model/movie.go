package model

import "strconv"

// CatalogMovie TMDB 搜索结果中的影片条目
type CatalogMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// Ref 转换为存储层使用的影片引用
func (m CatalogMovie) Ref() MovieRef {
	return MovieRef{
		ID:         strconv.Itoa(m.ID),
		Title:      m.Title,
		PosterPath: m.PosterPath,
	}
}

// CatalogMovieDetail TMDB 影片详情
type CatalogMovieDetail struct {
	CatalogMovie
	Runtime int `json:"runtime"`
	Genres  []struct {
		Name string `json:"name"`
	} `json:"genres"`
}
