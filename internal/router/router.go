package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/infinitychat/internal/handler"
	"github.com/infinitychat/internal/view"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	api := handler.NewAPI(logger)

	r.Use(handler.RequestID(), api.RequestLogger(), gin.Recovery())

	// 静态文件服务
	r.StaticFS("/static", view.StaticFS())

	r.GET("/ping", api.Ping)
	r.GET("/healthz", api.HealthCheck)

	r.GET("/", api.ShowHome)
	r.HEAD("/", api.ShowHome)

	r.NoRoute(api.ShowNotFound)

	return r
}
