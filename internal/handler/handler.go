package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/moviexplorer/internal/config"
	"github.com/user/moviexplorer/internal/repository"
	"github.com/user/moviexplorer/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	DB      *service.DatabaseService
	Auth    *service.AuthService
	Catalog *service.CatalogService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	registerValidations()

	return &Handler{
		Repos:   repos,
		Config:  cfg,
		DB:      service.NewDatabaseService(repos),
		Auth:    service.NewAuthService(repos),
		Catalog: service.NewCatalogService(cfg),
	}
}

// registerValidations 注册自定义校验规则
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// notblank: 去掉首尾空白后不能为空
		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
