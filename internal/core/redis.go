package core

// File: admin_server/core/redis.go
// Description: Redis客户端初始化模块，提供单例Redis客户端的创建与获取功能

import (
	"admin_server/internal/global"
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var redisClient *redis.Client

// InitRedis 初始化Redis客户端，建立连接并验证
func InitRedis() *redis.Client {
	conf := global.Config.Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("连接redis失败 %s", err)
		return nil
	}
	logrus.Infof("成功连接redis")
	return rdb
}

var onceRedis sync.Once

// GetRedisClient 获取单例Redis客户端实例（懒加载），未配置地址时返回nil
func GetRedisClient() *redis.Client {
	if !global.Config.Redis.Enable() {
		logrus.Warnf("未配置redis，令牌注销及分布式锁降级为数据库校验")
		return nil
	}
	onceRedis.Do(func() {
		redisClient = InitRedis()
	})
	return redisClient
}
