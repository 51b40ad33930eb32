package info

// File: admin_server/utils/info/enter.go
// Description: 服务器资源信息采集工具包，基于gopsutil库获取CPU、内存、磁盘及主机信息

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// ServerInfo 服务器资源信息结构体
type ServerInfo struct {
	HostName    string  `json:"host_name"`     // 主机名称
	Platform    string  `json:"platform"`      // 发行版本
	KernelArch  string  `json:"kernel_arch"`   // 内核架构
	BootTime    uint64  `json:"boot_time"`     // 启动时间戳
	CpuCount    int     `json:"cpu_count"`     // CPU逻辑核心数
	CpuUseRate  float64 `json:"cpu_use_rate"`  // CPU使用率
	MemTotal    uint64  `json:"mem_total"`     // 内存容量
	MemUseRate  float64 `json:"mem_use_rate"`  // 内存使用率
	DiskTotal   uint64  `json:"disk_total"`    // 磁盘容量
	DiskUseRate float64 `json:"disk_use_rate"` // 磁盘使用率
}

// GetServerInfo 采集服务器资源信息，diskPath为统计磁盘的挂载路径
func GetServerInfo(diskPath string) (*ServerInfo, error) {
	hostInfo, err := host.Info()
	if err != nil {
		return nil, err
	}
	cpuCount, err := cpu.Counts(true)
	if err != nil {
		return nil, err
	}
	// 采样200毫秒的整体CPU使用率
	cpuPercent, err := cpu.Percent(200*time.Millisecond, false)
	if err != nil {
		return nil, err
	}
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	diskInfo, err := disk.Usage(diskPath)
	if err != nil {
		return nil, err
	}

	message := &ServerInfo{
		HostName:    hostInfo.Hostname,
		Platform:    hostInfo.Platform + " " + hostInfo.PlatformVersion,
		KernelArch:  hostInfo.KernelArch,
		BootTime:    hostInfo.BootTime,
		CpuCount:    cpuCount,
		MemTotal:    memInfo.Total,
		MemUseRate:  memInfo.UsedPercent,
		DiskTotal:   diskInfo.Total,
		DiskUseRate: diskInfo.UsedPercent,
	}
	if len(cpuPercent) > 0 {
		message.CpuUseRate = cpuPercent[0]
	}
	return message, nil
}
