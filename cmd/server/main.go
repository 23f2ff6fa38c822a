package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/moviexplorer/internal/config"
	"github.com/user/moviexplorer/internal/handler"
	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/middleware"
	"github.com/user/moviexplorer/internal/repository"
	"github.com/user/moviexplorer/internal/router"
	"github.com/user/moviexplorer/internal/utils"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化键值后端
	store, err := kv.New(cfg.StoreBackend, cfg.DataDir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}

	// 初始化仓库
	repos := repository.NewRepositories(store)

	// 初始化缓存
	utils.InitCache()

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 请求日志
	r.Use(middleware.Logger())

	// 初始化 Handler 并注册路由
	h := handler.NewHandler(repos, cfg)
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，主协程等待退出信号
	go func() {
		log.Printf("服务器启动于 http://localhost:%s（存储后端: %s）", cfg.Port, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	// 关闭 SQLite 连接
	if closer, ok := store.(interface{ Close() error }); ok {
		closer.Close()
	}

	log.Println("服务器已退出")
}
