// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"library_server/internal/config"
	"library_server/internal/handler"
	"library_server/internal/infrastructure/logger"
	"library_server/internal/infrastructure/middleware"
	"library_server/internal/router"

	"github.com/gin-contrib/cors" // CORS 跨域中间件
	"github.com/gin-gonic/gin"    // Gin Web 框架
)

// Init 创建 Gin 引擎并返回
// 配置顺序：
//  1. 创建 Gin 引擎（空白，不含默认中间件）
//  2. 注册日志和恢复中间件
//  3. 配置 CORS 跨域规则和安全响应头
//  4. 注册业务路由
func Init(handlers *handler.Handlers, cfg *config.MainConfig) *gin.Engine {
	isDev := cfg.Mode != "release"
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	// 不使用 gin.Default() 以便完全控制中间件
	engine := gin.New()

	engine.Use(logger.GinLogger())
	// 参数 true 表示在日志中包含堆栈信息
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 生产环境应指定具体域名
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	engine.Use(middleware.Secure(isDev))
	// 由 Nginx 终止 TLS 时关闭
	if cfg.EnableTLSRedirect {
		engine.Use(middleware.TlsHandler(cfg.Host, cfg.Port))
	}

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine, cfg.EnableSwagger)

	return engine
}
