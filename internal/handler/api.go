package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/moviexplorer/internal/middleware"
	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/utils"
)

type toggleFavoriteRequest struct {
	MovieID    string `json:"movieId" binding:"required"`
	Title      string `json:"title" binding:"required"`
	PosterPath string `json:"poster_path"`
}

// ToggleFavorite 切换收藏状态
func (h *Handler) ToggleFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数错误")
		return
	}

	result, err := h.DB.ToggleFavorite(userID, model.MovieRef{
		ID:         req.MovieID,
		Title:      req.Title,
		PosterPath: req.PosterPath,
	})
	if err != nil {
		utils.InternalServerError(c, "操作失败")
		return
	}
	utils.Success(c, result)
}

// ListFavorites 当前用户的收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	favorites, err := h.DB.GetFavorites(userID)
	if err != nil {
		utils.InternalServerError(c, "读取收藏失败")
		return
	}
	utils.Success(c, favorites)
}

// CheckFavorite 查询某部影片是否已收藏
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID := c.Query("movieId")
	if movieID == "" {
		utils.BadRequest(c, "缺少 movieId")
		return
	}
	utils.Success(c, gin.H{"favorited": h.DB.IsFavorite(userID, movieID)})
}

type addReviewRequest struct {
	MovieID string `json:"movieId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Text    string `json:"text" binding:"required,notblank"`
}

// AddReview 发表影评
func (h *Handler) AddReview(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "评分需在 1-5 之间，内容不能为空")
		return
	}

	review, err := h.DB.AddReview(userID, req.MovieID, req.Rating, req.Text)
	if err != nil {
		utils.InternalServerError(c, "发表影评失败")
		return
	}
	utils.Success(c, review)
}

// ListReviews 某部影片的影评列表
func (h *Handler) ListReviews(c *gin.Context) {
	movieID := c.Param("id")
	utils.Success(c, h.DB.GetReviews(movieID))
}

// Search 搜索影片目录
// 有结果时以第一条结果累加搜索计数，与客户端搜索页行为一致
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequest(c, "缺少搜索词")
		return
	}

	results, err := h.Catalog.SearchMovies(query)
	if err != nil {
		utils.InternalServerError(c, "搜索失败")
		return
	}

	if len(results) > 0 {
		if err := h.DB.UpdateSearchCount(query, results[0].Ref()); err != nil {
			// 计数失败不影响搜索结果返回
			log.Printf("[搜索] 更新搜索计数失败: %v", err)
		}
	}
	utils.Success(c, results)
}

// MovieDetail 影片详情
func (h *Handler) MovieDetail(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}

	detail, err := h.Catalog.GetMovieDetails(movieID)
	if err != nil {
		utils.InternalServerError(c, "获取影片详情失败")
		return
	}
	utils.Success(c, detail)
}

// Trending 热门影片（按搜索计数聚合，取前 5）
func (h *Handler) Trending(c *gin.Context) {
	utils.Success(c, h.DB.GetTrendingMovies())
}

// DevReset 清空全部数据（开发环境专用）
func (h *Handler) DevReset(c *gin.Context) {
	if h.Config.Env == "production" {
		utils.Error(c, 403, "生产环境禁止重置数据")
		return
	}
	if err := h.Repos.ClearAllData(); err != nil {
		utils.InternalServerError(c, "重置失败")
		return
	}
	utils.SuccessWithMessage(c, "数据已清空", nil)
}
