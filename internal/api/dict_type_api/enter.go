package dict_type_api

// File: admin_server/api/dict_type_api/enter.go
// Description: 字典类型API接口定义

// DictTypeApi 字典类型API处理器结构体
type DictTypeApi struct{}
