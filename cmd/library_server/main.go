// @title 图书管理系统 API
// @version 1.0
// @description 读者注册登录、图书目录、借阅审批、书评和荐购
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "library_server/docs"
	"library_server/internal/config"
	"library_server/internal/dao/db"
	myredis "library_server/internal/dao/redis"
	"library_server/internal/handler"
	"library_server/internal/https_server"
	"library_server/internal/infrastructure/logger"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/infrastructure/sms"
	"library_server/internal/service"
	"library_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf, err := config.LoadConfig()
	if err != nil {
		log.Printf("load config: %v, using defaults", err)
	}
	config.SetConfig(conf)

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()
	zap.L().Info("日志初始化成功")

	// 3. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 4. 初始化数据库（迁移 + 默认管理员和分类）
	repos := db.Init()
	zap.L().Info("数据库初始化成功", zap.String("driver", conf.DatabaseConfig.Driver))

	// 5. 初始化 Redis
	cache := myredis.Init(&conf.RedisConfig)
	zap.L().Info("缓存初始化成功")

	// 6. 审计消息
	publisher := mq.Init(&conf.KafkaConfig)

	// 7. 初始化 SMS Service
	smsService, err := sms.Init(conf.AuthCodeConfig, cache)
	if err != nil {
		zap.L().Fatal("SMS Service 初始化失败", zap.Error(err))
	}

	// 8. Service 和 Handler (依赖注入)
	svc := service.NewServices(repos, cache, publisher, smsService)
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}
	engine := https_server.Init(handler.NewHandlers(svc, &conf.PaginationConfig), &conf.MainConfig)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}

	// 先停 HTTP，再排空异步任务（审计消息走 worker），最后关闭 Kafka 和数据库
	if err := cache.Close(); err != nil {
		zap.L().Error("close cache", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zap.L().Error("close publisher", zap.Error(err))
	}
	if err := db.Close(repos.DB()); err != nil {
		zap.L().Error("close database", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
