package dict_type_service

// File: admin_server/service/dict_type_service/enter.go
// Description: 字典类型服务模块，封装字典类型创建、修改、删除与全量查询的业务逻辑

import (
	"admin_server/internal/models"
	"errors"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"
)

// 业务错误
var (
	ErrDictTypeExist    = errors.New("字典类型已存在")
	ErrDictTypeNotFound = errors.New("字典类型不存在")
)

// allCacheTTL 全量字典类型缓存有效期
const allCacheTTL = time.Minute

const allCacheKey = "all"

var allCache = ttlcache.New[string, []models.DictTypeResponse](
	ttlcache.WithTTL[string, []models.DictTypeResponse](allCacheTTL),
	ttlcache.WithDisableTouchOnHit[string, []models.DictTypeResponse](),
)

// DictTypeService 字典类型服务结构体
type DictTypeService struct {
	log *logrus.Entry
}

// NewDictTypeService 创建DictTypeService实例的构造函数
func NewDictTypeService(log *logrus.Entry) *DictTypeService {
	return &DictTypeService{
		log: log,
	}
}

// allGen 缓存代数，每次失效加一，查询期间代数变化则不回填旧结果
var (
	allMu  sync.Mutex
	allGen uint64
)

// invalidate 字典类型发生变更后清空全量缓存
func invalidate() {
	allMu.Lock()
	defer allMu.Unlock()
	allGen++
	allCache.DeleteAll()
}

func cacheGen() uint64 {
	allMu.Lock()
	defer allMu.Unlock()
	return allGen
}

// storeAll 仅当查询开始后缓存未失效过时写入
func storeAll(gen uint64, list []models.DictTypeResponse) bool {
	allMu.Lock()
	defer allMu.Unlock()
	if gen != allGen {
		return false
	}
	allCache.Set(allCacheKey, list, ttlcache.DefaultTTL)
	return true
}
