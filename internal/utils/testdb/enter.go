package testdb

// File: admin_server/utils/testdb/enter.go
// Description: 测试辅助模块，为单元测试初始化内存SQLite数据库、日志、配置及内存Redis

import (
	"admin_server/internal/config"
	"admin_server/internal/global"
	"fmt"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestConfig 测试使用的配置
func TestConfig() *config.Config {
	return &config.Config{
		Logger: config.Logger{AppName: "admin_server_test", Level: "debug"},
		System: config.System{Mode: gin.TestMode},
		Jwt: config.Jwt{
			Expires: 3600,
			Issuer:  "admin_server",
			Secret:  "test-secret",
		},
		WhiteList: []string{"/admin_server/login", "/admin_server/captcha"},
	}
}

// Setup 初始化独立的内存数据库并迁移给定模型，同时重置全局配置、日志与Redis
func Setup(t *testing.T, dst ...any) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(dst...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库共享缓存模式下并发写入会锁表，测试中只保留一个连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	l := logrus.New()
	l.SetOutput(io.Discard)

	global.DB = db
	global.Log = l.WithField("appName", "admin_server_test")
	global.Config = TestConfig()
	global.Redis = nil
	global.Queue = nil
	return db
}

// SetupRedis 启动内存Redis并设置为全局Redis客户端
func SetupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		global.Redis = nil
	})
	global.Redis = client
	return mr
}
