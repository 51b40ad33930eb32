package jwts

// File: admin_server/utils/jwts/enter.go
// Description: JWT工具模块，提供Token生成、解析及验证功能

import (
	"admin_server/internal/global"
	"admin_server/internal/utils/uid"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ClaimsUserInfo Token中存储的用户信息结构体
type ClaimsUserInfo struct {
	UserID   string `json:"userID"`   // 用户ID
	UserName string `json:"userName"` // 用户名
	Role     int8   `json:"role"`     // 用户角色 1 管理员 2 普通用户
}

// Claims JWT完整载荷结构体，StandardClaims.Id 为在线会话的token_id
type Claims struct {
	ClaimsUserInfo
	jwt.StandardClaims
}

// GetToken 根据用户信息生成JWT Token，同时返回载荷供登记在线会话
func GetToken(info ClaimsUserInfo) (string, *Claims, error) {
	j := global.Config.Jwt
	cla := &Claims{
		ClaimsUserInfo: info,
		StandardClaims: jwt.StandardClaims{
			Id:        uid.New(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(j.Expires) * time.Second).Unix(),
			Issuer:    j.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cla)
	tokenString, err := token.SignedString([]byte(j.Secret))
	if err != nil {
		return "", nil, err
	}
	return tokenString, cla, nil
}

// ParseToken 解析并验证JWT Token，返回载荷信息
func ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}
	j := global.Config.Jwt
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if ok && token.Valid {
		if claims.Issuer != j.Issuer {
			return nil, errors.New("invalid issuer")
		}
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
