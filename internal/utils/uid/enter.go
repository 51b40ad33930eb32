package uid

// File: admin_server/utils/uid/enter.go
// Description: 主键生成工具，生成32位、按时间有序的十六进制字符串ID

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// New 基于UUIDv7生成32位ID，前48位为毫秒时间戳，字典序与生成顺序一致
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		u = uuid.New()
	}
	return hex.EncodeToString(u[:])
}
