package ip

// File: admin_server/utils/ip/enter.go
// Description: 提供IP地址相关的工具方法，包含本地IP地址判断功能

import "net"

// HasLocalIPAddr 判断给定的IP地址是否为本地/私有IP地址
func HasLocalIPAddr(_ip string) bool {
	ip := net.ParseIP(_ip)
	if ip == nil {
		return false
	}
	return ip.IsPrivate() || ip.IsLoopback()
}

// NetType 登录网络类型，内网或外网
func NetType(_ip string) string {
	if HasLocalIPAddr(_ip) {
		return "内网"
	}
	return "外网"
}
