package key_lock

// File: admin_server/service/redis_service/key_lock/enter.go
// Description: 业务键分布式锁模块，基于RedSync对同一业务唯一键的创建与修改操作串行化

import (
	"admin_server/internal/global"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
)

// Lock 获取业务键锁，返回释放函数；未配置Redis时不加锁，由数据库唯一索引兜底
func Lock(scope string, key string) (unlock func(), err error) {
	if global.Redis == nil {
		return func() {}, nil
	}
	rs := redsync.New(goredis.NewPool(global.Redis))
	mutex := rs.NewMutex(fmt.Sprintf("key_lock_%s_%s", scope, key),
		redsync.WithExpiry(10*time.Second),
		redsync.WithTries(20),
		redsync.WithRetryDelay(100*time.Millisecond),
	)
	if err = mutex.Lock(); err != nil {
		return nil, fmt.Errorf("获取锁失败: %w", err)
	}
	return func() {
		if _, err := mutex.Unlock(); err != nil {
			global.Log.Warnf("释放锁 %s 失败 %s", mutex.Name(), err)
		}
	}, nil
}
