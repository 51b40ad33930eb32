package flags

// File: admin_server/flags/enter.go
// Description: 命令行参数解析模块，处理命令行参数解析及对应功能调度

import (
	"admin_server/internal/global"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// FlagOptions 命令行参数配置结构体，存储解析后的所有命令行参数
type FlagOptions struct {
	File    string // 配置文件路径参数
	Version bool   // 版本信息打印开关
	DB      bool   // 数据库表结构迁移开关
	Menu    string // 功能菜单参数
	Type    string // 功能子类型参数
	Value   string // 功能参数值
	Help    bool   // 帮助信息展示开关
}

// Options 全局命令行参数实例
var Options = FlagOptions{File: "settings.yaml"}

// Parse 注册并解析命令行参数，需在读取配置前调用
func Parse() {
	flag.StringVar(&Options.File, "f", "settings.yaml", "配置文件路径")
	flag.BoolVar(&Options.Version, "vv", false, "打印当前版本")
	flag.BoolVar(&Options.Help, "h", false, "帮助信息")
	flag.BoolVar(&Options.DB, "db", false, "迁移表结构")
	flag.StringVar(&Options.Menu, "m", "", "菜单 user")
	flag.StringVar(&Options.Type, "t", "", "类型 create list")
	flag.StringVar(&Options.Value, "v", "", "值")
	flag.Parse()
}

func init() {
	var user User
	registerCommand("user", "create", "创建用户，-v 传入JSON时跳过交互输入", func() {
		if err := user.Create(Options.Value); err != nil {
			logrus.Fatalf("创建用户失败 %s", err)
		}
	})
	registerCommand("user", "list", "查看最近创建的用户", user.List)
}

// runBaseCommand 执行基础命令
func runBaseCommand() {
	if Options.DB {
		if err := Migrate(); err != nil {
			logrus.Fatalf("表结构迁移失败 %s", err)
		}
		logrus.Infof("表结构迁移成功")
		os.Exit(0)
	}
	if Options.Version {
		logrus.Infof("当前版本: %s  commit: %s, buildTime: %s",
			global.Version, global.Commit, global.BuildTime)
		os.Exit(0)
	}
}

// runHelpCommand 处理全局帮助与菜单级帮助
func runHelpCommand() {
	if !Options.Help {
		return
	}
	if Options.Menu == "" {
		fmt.Printf("菜单项:\n")
		for key := range HelpCommandMap {
			fmt.Printf("%s 使用 -m %s -h 查看具体子菜单\n", key, key)
		}
		os.Exit(0)
	}
	subMenuMap, ok := HelpCommandMap[Options.Menu]
	if !ok {
		logrus.Fatalf("不存在的菜单项 %s", Options.Menu)
	}
	for key, help := range subMenuMap {
		fmt.Printf("%s %s\n", key, help)
	}
	os.Exit(0)
}

// runCommand 执行已注册的业务命令
func runCommand() {
	if Options.Menu == "" || Options.Type == "" {
		return
	}
	command, ok := CommandMap[fmt.Sprintf("%s:%s", Options.Menu, Options.Type)]
	if !ok {
		logrus.Fatalf("不存在的菜单项 %s %s", Options.Menu, Options.Type)
	}
	command.Func()
	os.Exit(0)
}

// Command 命令结构体，封装命令的菜单、子类型、帮助信息及执行函数
type Command struct {
	Menu string
	Type string
	Help string
	Func func()
}

// CommandMap 命令注册表，以"菜单:子类型"为键
var CommandMap = map[string]*Command{}

// HelpCommandMap 各菜单的子命令帮助信息
var HelpCommandMap = map[string]map[string]string{}

// registerCommand 注册命令到全局注册表
func registerCommand(menu, subMenu, help string, fun func()) {
	CommandMap[fmt.Sprintf("%s:%s", menu, subMenu)] = &Command{
		Menu: menu,
		Type: subMenu,
		Help: help,
		Func: fun,
	}
	subMenuMap, ok := HelpCommandMap[menu]
	if !ok {
		subMenuMap = map[string]string{}
		HelpCommandMap[menu] = subMenuMap
	}
	subMenuMap[subMenu] = help
}

// Run 命令行入口函数，依次执行基础命令、帮助命令、业务命令
func Run() {
	runBaseCommand()
	runHelpCommand()
	runCommand()
}
