// Package db 负责建立数据库连接、自动迁移表结构、初始化 Repository 层
// 支持 MySQL（生产）和 SQLite（本地开发、测试）两种驱动
package db

import (
	"errors"
	"fmt"
	"time"

	"library_server/internal/config"
	"library_server/internal/dao/db/repository"
	"library_server/internal/model"
	"library_server/pkg/errorx"

	mysqlcfg "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init 按配置打开数据库并返回 Repository 聚合
// 失败时直接 Fatal，和服务启动的其他步骤保持一致
func Init() *repository.Repositories {
	conf := config.GetConfig()
	gdb, err := Open(&conf.DatabaseConfig)
	if err != nil {
		zap.L().Fatal("open database failed", zap.Error(err))
	}
	if err := Seed(gdb, &conf.AdminConfig); err != nil {
		zap.L().Fatal("seed database failed", zap.Error(err))
	}
	return repository.NewRepositories(gdb)
}

// Open 建立连接并执行 AutoMigrate
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// SQLite 同一时刻只允许一个写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// 只建表和补字段，不会删除已有字段或数据
	if err := gdb.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return gdb, nil
}

// dialectorFor 根据驱动名选择 gorm 方言
func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysqldriver.Open(MysqlDSN(cfg)), nil
	case "sqlite", "":
		path := cfg.SqlitePath
		if cfg.DSN != "" {
			path = cfg.DSN
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// MysqlDSN 构建 MySQL DSN，配置里给了完整 DSN 时直接使用
func MysqlDSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	mc := mysqlcfg.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.DatabaseName
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Seed 写入默认管理员和默认分类，已存在时跳过
func Seed(gdb *gorm.DB, admin *config.AdminConfig) error {
	repos := repository.NewRepositories(gdb)
	return repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.Category.FindByName(DefaultCategory); err != nil {
			if !errorx.IsNotFound(err) {
				return err
			}
			if err := tx.Category.Create(&model.Category{Name: DefaultCategory}); err != nil {
				return err
			}
		}

		if admin == nil || admin.Name == "" || admin.Password == "" {
			return nil
		}
		_, err := tx.Admin.FindByName(admin.Name)
		if err == nil {
			return nil
		}
		if !errorx.IsNotFound(err) {
			return err
		}
		if err := tx.Admin.Create(&model.Admin{Name: admin.Name, RawPwd: admin.Password}); err != nil {
			return err
		}
		zap.L().Info("default admin created", zap.String("name", admin.Name))
		return nil
	})
}

// DefaultCategory 启动时保证存在的分类
const DefaultCategory = "未分类"

// Close 关闭底层连接
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return errors.New("nil gorm db")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck 探测连接是否可用
func HealthCheck(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
