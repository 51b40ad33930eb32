package core

// File: admin_server/core/mq.go
// Description: RabbitMQ连接初始化模块，支持SSL/TLS加密连接与普通连接，创建并返回MQ通道实例

import (
	"admin_server/internal/global"
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// InitMQ 初始化RabbitMQ连接并创建通道，未启用时返回nil
func InitMQ() *amqp.Channel {
	cfg := global.Config.MQ
	if !cfg.Enable {
		return nil
	}

	var conn *amqp.Connection
	var err error
	if cfg.Ssl {
		cert, certErr := tls.LoadX509KeyPair(cfg.ClientCertificate, cfg.ClientKey)
		if certErr != nil {
			logrus.Fatalf("加载客户端证书失败: %v", certErr)
		}
		caCert, caErr := os.ReadFile(cfg.CaCertificate)
		if caErr != nil {
			logrus.Fatalf("读取CA证书失败: %v", caErr)
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)

		conn, err = amqp.DialTLS(cfg.Addr(), &tls.Config{
			Certificates: []tls.Certificate{cert},
			RootCAs:      caCertPool,
		})
	} else {
		conn, err = amqp.Dial(cfg.Addr())
	}
	if err != nil {
		logrus.Fatalf("无法连接到 RabbitMQ: %v", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		logrus.Fatalf("无法打开通道: %v", err)
	}
	return ch
}
