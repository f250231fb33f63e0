// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找，环境变量可覆盖部分字段
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"github.com/joho/godotenv"   // .env 文件加载
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName           string `toml:"appName"`           // 应用名称，用于日志标识等
	Host              string `toml:"host"`              // 服务器监听地址，如 "0.0.0.0"
	Port              int    `toml:"port"`              // 服务器监听端口，如 8000
	Mode              string `toml:"mode"`              // 运行模式：dev / release
	EnableTLSRedirect bool   `toml:"enableTLSRedirect"` // 是否启用 HTTP -> HTTPS 跳转
	EnableSwagger     bool   `toml:"enableSwagger"`     // 是否挂载 /swagger 文档
}

// DatabaseConfig 数据库连接配置
type DatabaseConfig struct {
	Driver       string `toml:"driver"`       // mysql 或 sqlite
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
	DSN          string `toml:"dsn"`          // 完整 DSN，非空时优先于上面的字段
	SqlitePath   string `toml:"sqlitePath"`   // sqlite 文件路径
	MaxOpenConns int    `toml:"maxOpenConns"` // 最大连接数
	MaxIdleConns int    `toml:"maxIdleConns"` // 最大空闲连接数
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
	Workers  int    `toml:"workers"`  // 异步任务 Worker 数量
	Buffer   int    `toml:"buffer"`   // 异步任务缓冲区大小
}

// AuthCodeConfig 短信验证码服务配置（阿里云 SMS）
type AuthCodeConfig struct {
	Mode            string `toml:"mode"`            // aliyun 或 mock
	AccessKeyID     string `toml:"accessKeyID"`     // 阿里云 AccessKey ID
	AccessKeySecret string `toml:"accessKeySecret"` // 阿里云 AccessKey Secret
	SignName        string `toml:"signName"`        // 短信签名名称
	TemplateCode    string `toml:"templateCode"`    // 短信模板 Code
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig Kafka 审计消息配置
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"` // 消息模式："none" 或 "kafka"
	HostPort    string        `toml:"hostPort"`    // Kafka 服务器地址，如 "localhost:9092"
	OplogTopic  string        `toml:"oplogTopic"`  // 管理员操作日志主题
	Partition   int           `toml:"partition"`   // 分区数
	Timeout     time.Duration `toml:"timeout"`     // 超时时间（秒）
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret             string `toml:"secret"`             // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 有效期（分钟）
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 有效期（小时）
}

// AdminConfig 启动时自动创建的默认管理员
type AdminConfig struct {
	Name     string `toml:"name"`
	Password string `toml:"password"`
}

// PaginationConfig 分页默认值
type PaginationConfig struct {
	DefaultPerPage int `toml:"defaultPerPage"` // 缺省每页条数，上限固定为 100
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig       `toml:"mainConfig"`
	DatabaseConfig   `toml:"databaseConfig"`
	RedisConfig      `toml:"redisConfig"`
	AuthCodeConfig   `toml:"authCodeConfig"`
	LogConfig        `toml:"logConfig"`
	KafkaConfig      `toml:"kafkaConfig"`
	JWTConfig        `toml:"jwtConfig"`
	AdminConfig      `toml:"adminConfig"`
	PaginationConfig `toml:"paginationConfig"`
}

// config 全局配置单例，延迟加载
var config *Config

// DefaultPaths 候选配置文件路径（优先加载本地配置）
var DefaultPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml",
	"../../configs/config.toml",
}

// LoadConfig 从候选路径加载配置文件，找到第一个可用的即停止
// 没有任何可用文件时返回错误，但 cfg 仍然带有默认值和环境变量覆盖
func LoadConfig(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	// .env 不存在不算错误
	_ = godotenv.Load()

	cfg := new(Config)
	var loadErr error = fmt.Errorf("could not find configuration file in any of the search paths")
	for _, path := range paths {
		if _, err := toml.DecodeFile(path, cfg); err == nil {
			loadErr = nil
			break
		} else if !os.IsNotExist(err) {
			loadErr = fmt.Errorf("decode %s: %w", path, err)
			break
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, loadErr
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件
func GetConfig() *Config {
	if config == nil {
		config, _ = LoadConfig() // 忽略加载错误，使用默认值
	}
	return config
}

// SetConfig 替换全局配置，测试和命令行参数使用
func SetConfig(c *Config) {
	config = c
}

// applyEnv 环境变量覆盖
func applyEnv(cfg *Config) {
	cfg.DatabaseConfig.Driver = getEnv("LIBRARY_DB_DRIVER", cfg.DatabaseConfig.Driver)
	cfg.DatabaseConfig.DSN = getEnv("LIBRARY_DB_DSN", cfg.DatabaseConfig.DSN)
	cfg.DatabaseConfig.SqlitePath = getEnv("LIBRARY_SQLITE_PATH", cfg.DatabaseConfig.SqlitePath)
	cfg.JWTConfig.Secret = getEnv("LIBRARY_JWT_SECRET", cfg.JWTConfig.Secret)
	cfg.KafkaConfig.MessageMode = getEnv("LIBRARY_KAFKA_MODE", cfg.KafkaConfig.MessageMode)
	cfg.AuthCodeConfig.Mode = getEnv("LIBRARY_SMS_MODE", cfg.AuthCodeConfig.Mode)
	cfg.MainConfig.Port = getEnvInt("LIBRARY_PORT", cfg.MainConfig.Port)
	cfg.MainConfig.Mode = getEnv("LIBRARY_MODE", cfg.MainConfig.Mode)

	if addr := os.Getenv("LIBRARY_REDIS_ADDR"); addr != "" {
		host, port, ok := strings.Cut(addr, ":")
		cfg.RedisConfig.Host = host
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				cfg.RedisConfig.Port = p
			}
		}
	}
}

// applyDefaults 零值字段填默认值
func applyDefaults(cfg *Config) {
	if cfg.AppName == "" {
		cfg.AppName = "library_server"
	}
	if cfg.MainConfig.Host == "" {
		cfg.MainConfig.Host = "0.0.0.0"
	}
	if cfg.MainConfig.Port == 0 {
		cfg.MainConfig.Port = 8000
	}
	if cfg.MainConfig.Mode == "" {
		cfg.MainConfig.Mode = "dev"
	}
	if cfg.DatabaseConfig.Driver == "" {
		cfg.DatabaseConfig.Driver = "sqlite"
	}
	if cfg.DatabaseConfig.SqlitePath == "" {
		cfg.DatabaseConfig.SqlitePath = "library.db"
	}
	if cfg.DatabaseConfig.Port == 0 {
		cfg.DatabaseConfig.Port = 3306
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 50
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.RedisConfig.Host == "" {
		cfg.RedisConfig.Host = "127.0.0.1"
	}
	if cfg.RedisConfig.Port == 0 {
		cfg.RedisConfig.Port = 6379
	}
	if cfg.Workers == 0 {
		cfg.Workers = 8
	}
	if cfg.Buffer == 0 {
		cfg.Buffer = 1000
	}
	if cfg.AuthCodeConfig.Mode == "" {
		cfg.AuthCodeConfig.Mode = "mock"
	}
	if cfg.LogPath == "" {
		cfg.LogPath = "logs"
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.MessageMode == "" {
		cfg.MessageMode = "none"
	}
	if cfg.OplogTopic == "" {
		cfg.OplogTopic = "library_oplog"
	}
	if cfg.Partition == 0 {
		cfg.Partition = 1
	}
	if cfg.KafkaConfig.Timeout == 0 {
		cfg.KafkaConfig.Timeout = 5
	}
	if cfg.AccessTokenExpiry == 0 {
		cfg.AccessTokenExpiry = 120
	}
	if cfg.RefreshTokenExpiry == 0 {
		cfg.RefreshTokenExpiry = 168
	}
	if cfg.DefaultPerPage == 0 {
		cfg.DefaultPerPage = 10
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
