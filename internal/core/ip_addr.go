package core

// File: admin_server/core/ip_addr.go
// Description: IP地址解析核心模块，基于ip2region数据库实现IP地址到地理位置的解析

import (
	"admin_server/internal/global"
	"admin_server/internal/utils/ip"
	"fmt"
	"strings"

	"github.com/lionsoul2014/ip2region/binding/golang/xdb"
	"github.com/sirupsen/logrus"
)

var searcher *xdb.Searcher

// InitIPDB 加载配置中的ip2region.xdb文件到内存，未配置时跳过
func InitIPDB() {
	dbPath := global.Config.IPDB
	if dbPath == "" {
		logrus.Warnf("未配置ip地址数据库，登录地点将记录为未知地址")
		return
	}
	cBuff, err := xdb.LoadContentFromFile(dbPath)
	if err != nil {
		logrus.Fatalf("ip地址数据库读取失败 %s", err)
		return
	}
	_searcher, err := xdb.NewWithBuffer(cBuff)
	if err != nil {
		logrus.Fatalf("ip地址数据库加载失败 %s", err)
		return
	}
	searcher = _searcher
}

// GetIpAddr 根据IP地址解析对应的地理位置信息
func GetIpAddr(_ip string) (addr string) {
	if ip.HasLocalIPAddr(_ip) {
		return "内网"
	}
	if searcher == nil {
		return "未知地址"
	}

	region, err := searcher.SearchByStr(_ip)
	if err != nil {
		logrus.Warnf("错误的ip地址 %s", err)
		return "异常地址"
	}
	return formatRegion(region)
}

// formatRegion 格式化 国家|区域|省份|城市|运营商 格式的查询结果
func formatRegion(region string) string {
	_addrList := strings.Split(region, "|")
	if len(_addrList) != 5 {
		return "未知地址"
	}
	country := _addrList[0]
	province := _addrList[2]
	city := _addrList[3]

	if province != "0" && city != "0" {
		return fmt.Sprintf("%s·%s", province, city)
	}
	if country != "0" && province != "0" {
		return fmt.Sprintf("%s·%s", country, province)
	}
	if country != "0" {
		return country
	}
	return region
}
