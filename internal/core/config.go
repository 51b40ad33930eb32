package core

// File: admin_server/core/config.go
// Description: 核心模块，提供配置文件读取及环境变量覆盖功能

import (
	"admin_server/internal/config"
	"admin_server/internal/flags"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadConfig 读取并解析配置文件，返回配置结构体指针
func ReadConfig() *config.Config {
	c, err := LoadConfig(flags.Options.File)
	if err != nil {
		logrus.Fatalf("配置文件读取错误 %s", err)
		return nil
	}
	return c
}

// LoadConfig 从指定路径加载配置，并使用.env及环境变量覆盖敏感配置
func LoadConfig(file string) (*config.Config, error) {
	// 读取配置文件内容
	byteData, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	// 初始化配置结构体
	c := new(config.Config)

	// 将YAML数据解析到配置结构体
	err = yaml.Unmarshal(byteData, c)
	if err != nil {
		return nil, err
	}

	// .env文件不存在时忽略
	_ = godotenv.Load()
	applyEnv(c)
	return c, nil
}

// applyEnv 使用环境变量覆盖密码、密钥类配置
func applyEnv(c *config.Config) {
	if v := os.Getenv("ADMIN_DB_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("ADMIN_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}
