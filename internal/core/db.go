package core

// File: admin_server/core/db.go
// Description: 数据库核心模块，按配置选择MySQL/PostgreSQL/SQLite驱动，实现连接初始化、连接池配置及连接有效性检测

import (
	"admin_server/internal/config"
	"admin_server/internal/global"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector 根据数据库类型返回对应的gorm驱动
func Dialector(cfg config.DB) (gorm.Dialector, error) {
	switch cfg.Mode {
	case "", "mysql":
		return mysql.Open(cfg.Dsn()), nil
	case "postgres":
		return postgres.Open(cfg.Dsn()), nil
	case "sqlite":
		return sqlite.Open(cfg.Dsn()), nil
	}
	return nil, fmt.Errorf("不支持的数据库类型 %s", cfg.Mode)
}

// OpenDB 打开数据库连接并配置连接池
func OpenDB(cfg config.DB) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true, // 唯一索引冲突转换为gorm.ErrDuplicatedKey
	}
	if cfg.Debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 100
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = 10000
	}
	logrus.Infof("最大空闲数 %d", cfg.MaxIdleConns)
	logrus.Infof("最大连接数 %d", cfg.MaxOpenConns)
	logrus.Infof("超时时间 %s", time.Duration(cfg.ConnMaxLifetime)*time.Second)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	return db, nil
}

// InitDB 初始化数据库连接，失败时终止进程
func InitDB() *gorm.DB {
	db, err := OpenDB(global.Config.DB)
	if err != nil {
		logrus.Fatalf("数据库连接失败 %s", err)
		return nil
	}
	logrus.Infof("数据库连接成功 %s", global.Config.DB.Mode)
	return db
}

var (
	db     *gorm.DB
	onceDB sync.Once
)

// GetDB 获取数据库连接实例（单例模式）
func GetDB() *gorm.DB {
	onceDB.Do(func() {
		db = InitDB()
	})
	return db
}
