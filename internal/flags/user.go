package flags

// File: admin_server/flags/user.go
// Description: 用户命令行操作模块，支持通过JSON参数或交互式方式创建用户及查询用户列表

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/user_service"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// User 命令行用户操作处理器结构体
type User struct{}

// Create 创建用户，value为JSON时直接解析，否则交互式输入
func (User) Create(value string) error {
	var userInfo user_service.UserCreateRequest

	if value != "" {
		if err := json.Unmarshal([]byte(value), &userInfo); err != nil {
			return fmt.Errorf("用户信息错误 %w", err)
		}
	} else {
		fmt.Println("请选择角色： 1 管理员 2 普通用户")
		if _, err := fmt.Scanln(&userInfo.Role); err != nil {
			return fmt.Errorf("输入错误 %w", err)
		}

		fmt.Println("请输入用户名")
		if _, err := fmt.Scanln(&userInfo.UserName); err != nil {
			return fmt.Errorf("输入错误 %w", err)
		}

		fmt.Println("请输入密码")
		password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("读取密码时出错 %w", err)
		}
		fmt.Println("请再次输入密码")
		rePassword, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("读取密码时出错 %w", err)
		}
		if string(password) != string(rePassword) {
			return errors.New("两次密码不一致")
		}
		userInfo.Password = string(password)
	}

	if userInfo.Role != models.RoleAdmin && userInfo.Role != models.RoleUser {
		return errors.New("用户角色输入错误")
	}
	if userInfo.UserName == "" || userInfo.Password == "" {
		return errors.New("用户名和密码不能为空")
	}

	_, err := user_service.NewUserService(global.Log).Create(userInfo)
	return err
}

// List 查询并展示最近创建的10条用户信息
func (User) List() {
	var userList []models.UserModel
	global.DB.Order("created_at desc").Limit(10).Find(&userList)

	for _, model := range userList {
		fmt.Printf("用户id：%s  用户名：%s 用户角色：%d 创建时间：%s\n",
			model.UserID,
			model.UserName,
			model.Role,
			model.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
}
