package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/user/moviexplorer/internal/middleware"
	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/repository"
	"github.com/user/moviexplorer/internal/service"
	"github.com/user/moviexplorer/internal/utils"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,notblank"`
	Name     string `json:"name" binding:"required,notblank"`
}

// Register 注册，成功后不自动登录
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请填写有效的邮箱、密码和昵称")
		return
	}

	if err := h.Auth.Signup(req.Email, req.Password, req.Name); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.BadRequest(c, "该邮箱已被注册")
			return
		}
		utils.InternalServerError(c, "注册失败")
		return
	}
	utils.SuccessWithMessage(c, "注册成功，请登录", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 登录，成功后签发 JWT 并写入 Cookie
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请填写邮箱和密码")
		return
	}

	user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.Unauthorized(c, "邮箱或密码错误")
			return
		}
		utils.InternalServerError(c, "登录失败")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "登录失败")
		return
	}
	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)

	utils.Success(c, gin.H{"user": user, "token": token})
}

// Logout 登出，清除会话与 Cookie
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(); err != nil {
		utils.InternalServerError(c, "登出失败")
		return
	}
	c.SetCookie("token", "", -1, "/", "", false, true)
	utils.SuccessWithMessage(c, "已登出", nil)
}

// Profile 获取当前登录用户的资料
func (h *Handler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user := h.Auth.GetUserProfile(userID)
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return
	}
	// 不回传密码哈希
	utils.Success(c, gin.H{
		"_id":       user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"avatar":    user.Avatar,
		"createdAt": user.CreatedAt,
	})
}

type updateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// UpdateProfile 更新当前登录用户的昵称和头像
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数错误")
		return
	}

	updated, err := h.Auth.UpdateUserProfile(userID, &model.UserUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.NotFound(c, "用户不存在")
			return
		}
		utils.InternalServerError(c, "更新失败")
		return
	}
	utils.Success(c, gin.H{
		"_id":    updated.ID,
		"email":  updated.Email,
		"name":   updated.Name,
		"avatar": updated.Avatar,
	})
}
