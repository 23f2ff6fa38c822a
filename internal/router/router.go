package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviexplorer/internal/handler"
	"github.com/user/moviexplorer/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 认证 ====================
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}

	// ==================== 公开接口 ====================
	api := r.Group("/api")
	{
		api.GET("/search", h.Search)
		api.GET("/trending", h.Trending)
		api.GET("/movies/:id", h.MovieDetail)
		api.GET("/movies/:id/reviews", h.ListReviews)
	}

	// ==================== 需要登录 ====================
	authed := r.Group("/api")
	authed.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		authed.GET("/profile", h.Profile)
		authed.PUT("/profile", h.UpdateProfile)
		authed.POST("/favorites/toggle", h.ToggleFavorite)
		authed.GET("/favorites", h.ListFavorites)
		authed.GET("/favorites/check", h.CheckFavorite)
		authed.POST("/reviews", h.AddReview)
	}

	// ==================== 开发工具 ====================
	r.POST("/api/dev/reset", h.DevReset)
}
