package token_black

// File: admin_server/service/redis_service/token_black/enter.go
// Description: token黑名单模块，强制下线或注销的token写入Redis，过期时间与token有效期一致

import (
	"admin_server/internal/global"
	"context"
	"fmt"
	"time"
)

func key(tokenID string) string {
	return fmt.Sprintf("token_black_%s", tokenID)
}

// Set 将token加入黑名单，exp为token过期的Unix时间戳；已过期的token无需记录
func Set(tokenID string, exp int64) error {
	if global.Redis == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(time.Unix(exp, 0))
	if ttl <= 0 {
		return nil
	}
	return global.Redis.Set(context.Background(), key(tokenID), "1", ttl).Err()
}

// Has 判断token是否在黑名单中，Redis异常时按未吊销处理
func Has(tokenID string) bool {
	if global.Redis == nil {
		return false
	}
	n, err := global.Redis.Exists(context.Background(), key(tokenID)).Result()
	if err != nil {
		global.Log.Errorf("查询token黑名单失败 %s", err)
		return false
	}
	return n > 0
}
