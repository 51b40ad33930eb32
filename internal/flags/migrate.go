package flags

// File: admin_server/flags/migrate.go
// Description: 负责执行GORM自动迁移以创建或更新数据表结构

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
)

// Migrate 执行数据库表结构自动迁移
func Migrate() error {
	return global.DB.AutoMigrate(
		&models.UserModel{},
		&models.LoginLogModel{},
		&models.UserOnlineModel{},
		&models.DictTypeModel{},
	)
}
