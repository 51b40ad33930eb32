package config

// File: admin_server/config/enter.go
// Description: 配置模块，定义应用配置结构体及资源配置相关方法

import "fmt"

// Config 应用整体配置结构体
type Config struct {
	DB        DB       `yaml:"db"`        // 数据库配置信息
	Logger    Logger   `yaml:"logger"`    // 日志配置信息
	Redis     Redis    `yaml:"redis"`     // redis配置信息
	System    System   `yaml:"system"`    // 系统配置信息
	Jwt       Jwt      `yaml:"jwt"`       // jwt配置信息
	MQ        MQ       `yaml:"mq"`        // rabbitMQ配置信息
	IPDB      string   `yaml:"ipDB"`      // ip2region数据库文件路径
	WhiteList []string `yaml:"whiteList"` // 免登录接口路径
}

// DB 数据库连接配置结构体
type DB struct {
	Mode            string `yaml:"mode"`            // 数据库类型 [mysql|postgres|sqlite]
	DbName          string `yaml:"db_name"`         // 数据库名称（sqlite为文件路径）
	Host            string `yaml:"host"`            // 数据库主机地址
	Port            int    `yaml:"port"`            // 数据库端口
	User            string `yaml:"user"`            // 数据库用户名
	Password        string `yaml:"password"`        // 数据库密码
	Debug           bool   `yaml:"debug"`           // 是否打印SQL
	MaxIdleConns    int    `yaml:"maxIdleConns"`    // 数据库最大空闲连接数
	MaxOpenConns    int    `yaml:"maxOpenConns"`    // 数据库最大打开连接数
	ConnMaxLifetime int    `yaml:"connMaxLifetime"` // 数据库连接最大生命周期
}

// Dsn 生成数据库连接DSN字符串
func (cfg DB) Dsn() string {
	switch cfg.Mode {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=Asia/Shanghai",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.DbName,
			cfg.Port,
		)
	case "sqlite":
		return cfg.DbName
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DbName,
	)
}

// Logger 日志配置结构体
type Logger struct {
	Format  string `yaml:"format"`  // 日志格式 [json|text]
	Level   string `yaml:"level"`   // 日志级别
	AppName string `yaml:"appName"` // 应用名称
	LogPath string `yaml:"logPath"` // 日志目录，为空时为logs
}

// Redis 配置结构体
type Redis struct {
	Addr     string `yaml:"addr"`     // Redis地址，为空时不启用
	Password string `yaml:"password"` // Redis密码
	DB       int    `yaml:"db"`       // Redis数据库索引
}

// Enable Redis是否启用
func (r Redis) Enable() bool {
	return r.Addr != ""
}

// System 系统配置结构体
type System struct {
	WebAddr string `yaml:"webAddr"` // Web服务监听地址
	Mode    string `yaml:"mode"`    // 运行模式 [debug|release|test]
}

// Jwt 配置结构体
type Jwt struct {
	Expires int    `yaml:"expires"` // token过期时间,单位秒
	Issuer  string `yaml:"issuer"`  // token签发者
	Secret  string `yaml:"secret"`  // token密钥
}

// MQ rabbitMQ 配置结构体
type MQ struct {
	Enable            bool   `yaml:"enable"`            // 是否启用
	User              string `yaml:"user"`              // 用户名
	Password          string `yaml:"password"`          // 密码
	Host              string `yaml:"host"`              // 主机地址
	Port              int    `yaml:"port"`              // 端口号
	Ssl               bool   `yaml:"ssl"`               // 是否使用SSL
	ClientCertificate string `yaml:"clientCertificate"` // 客户端证书
	ClientKey         string `yaml:"clientKey"`         // 客户端密钥
	CaCertificate     string `yaml:"caCertificate"`     // CA证书
	LoginExchangeName string `yaml:"loginExchangeName"` // 登录事件交换器名称
}

// Addr 获取rabbitMQ地址
func (m MQ) Addr() string {
	if m.Ssl {
		return fmt.Sprintf("amqps://%s:%s@%s:%d/", m.User, m.Password, m.Host, m.Port)
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", m.User, m.Password, m.Host, m.Port)
}
