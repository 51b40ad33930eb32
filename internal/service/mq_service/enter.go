package mq_service

// File: admin_server/service/mq_service/enter.go
// Description: RabbitMQ消息服务，注册登录事件交换器并发布登录事件

import (
	"admin_server/internal/global"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// Run 注册系统所需的RabbitMQ交换器，未启用MQ时跳过
func Run() {
	if global.Queue == nil {
		return
	}
	exchangeDeclare(global.Config.MQ.LoginExchangeName)
}

// exchangeDeclare 声明单个fanout交换器，所有绑定队列都会收到登录事件
func exchangeDeclare(name string) {
	err := global.Queue.ExchangeDeclare(
		name,
		"fanout",
		true,  // 持久化
		false, // 不自动删除
		false,
		false,
		nil,
	)
	if err != nil {
		logrus.Fatalf("声明交换器 %s 失败 %s", name, err)
		return
	}
	logrus.Infof("声明交换器 %s 成功", name)
}

// sendExchangeMessage 发送JSON消息到指定的交换器
func sendExchangeMessage(exchangeName string, req any) error {
	byteData, err := json.Marshal(req)
	if err != nil {
		return err
	}
	err = global.Queue.Publish(
		exchangeName,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        byteData,
		})
	if err != nil {
		logrus.Errorf("%s 消息发送失败 %s %s", exchangeName, err, string(byteData))
		return err
	}
	logrus.Debugf("%s 消息发送成功 %s", exchangeName, string(byteData))
	return nil
}
