package online_service

// File: admin_server/service/online_service/enter.go
// Description: 在线用户会话服务，负责登录时登记会话、强制下线、主动注销、过期清理及token吊销判断

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/service/log_service"
	"admin_server/internal/service/redis_service/token_black"
	"admin_server/internal/utils/jwts"
	"admin_server/internal/utils/uid"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound 会话不存在
var ErrSessionNotFound = errors.New("在线会话不存在")

// Create 登录成功后登记在线会话
func Create(claims *jwts.Claims, client *log_service.LoginLogService) (*models.UserOnlineModel, error) {
	model := &models.UserOnlineModel{
		ID:            uid.New(),
		UID:           claims.UserID,
		TokenID:       claims.Id,
		TokenExp:      claims.ExpiresAt,
		LoginTime:     time.Now().Truncate(time.Second),
		UserName:      log_service.Truncate(claims.UserName, 255),
		Net:           client.Net,
		Ipaddr:        log_service.Truncate(client.IP, 120),
		LoginLocation: log_service.Truncate(client.Addr, 255),
		Device:        log_service.Truncate(client.Device, 50),
		Browser:       log_service.Truncate(client.Browser, 30),
		Os:            log_service.Truncate(client.Os, 30),
	}
	if err := global.DB.Create(model).Error; err != nil {
		return nil, err
	}
	return model, nil
}

// IsRevoked token是否已被吊销
// 配置Redis时查询黑名单，否则要求token对应的在线会话仍然存在
func IsRevoked(tokenID string) bool {
	if global.Redis != nil {
		return token_black.Has(tokenID)
	}
	var count int64
	err := global.DB.Model(&models.UserOnlineModel{}).
		Where("token_id = ?", tokenID).
		Count(&count).Error
	if err != nil {
		global.Log.Errorf("查询在线会话失败 %s", err)
		return true
	}
	return count == 0
}

// Remove 强制下线，吊销会话token并删除会话记录，返回删除条数
func Remove(ids []string, log *logrus.Entry) (int64, error) {
	var list []models.UserOnlineModel
	if err := global.DB.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return 0, err
	}
	revoke(list, log)

	return common_service.Remove(models.UserOnlineModel{}, common_service.RemoveRequest{
		IDList: ids,
		Log:    log,
		Msg:    "在线用户",
	})
}

// RemoveByUser 结束指定用户的全部会话，用于删除用户后使其token立即失效
func RemoveByUser(userIDs []string, log *logrus.Entry) (int64, error) {
	var list []models.UserOnlineModel
	if err := global.DB.Where("u_id IN ?", userIDs).Find(&list).Error; err != nil {
		return 0, err
	}
	if len(list) == 0 {
		return 0, nil
	}
	revoke(list, log)

	result := global.DB.Where("u_id IN ?", userIDs).Delete(&models.UserOnlineModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	log.Infof("结束用户会话 %d 个", result.RowsAffected)
	return result.RowsAffected, nil
}

// Logout 注销当前token对应的会话
func Logout(claims *jwts.Claims, log *logrus.Entry) error {
	if err := token_black.Set(claims.Id, claims.ExpiresAt); err != nil {
		log.Errorf("token %s 加入黑名单失败 %s", claims.Id, err)
		return err
	}
	result := global.DB.Where("token_id = ?", claims.Id).Delete(&models.UserOnlineModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	log.Infof("用户 %s 注销登录", claims.UserName)
	return nil
}

// ClearExpired 删除token已过期的会话，返回删除条数
func ClearExpired() (int64, error) {
	result := global.DB.Where("token_exp < ?", time.Now().Unix()).Delete(&models.UserOnlineModel{})
	return result.RowsAffected, result.Error
}

func revoke(list []models.UserOnlineModel, log *logrus.Entry) {
	for _, m := range list {
		if err := token_black.Set(m.TokenID, m.TokenExp); err != nil {
			log.Errorf("token %s 加入黑名单失败 %s", m.TokenID, err)
		}
	}
}
