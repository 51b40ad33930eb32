package core

// File: admin_server/core/logger.go
// Description: 日志模块，自定义logrus日志格式与钩子，实现日志按日期分割、分级存储及彩色输出

import (
	"admin_server/internal/global"
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// 日志级别对应的终端输出颜色代码
const (
	red    = 31
	yellow = 33
	blue   = 36
	gray   = 37
)

// LogFormatter 彩色文本日志格式化器
type LogFormatter struct {
	AppName string // 未携带appName字段时使用的应用名
}

// Format 输出格式：应用名 [时间] [级别] 文件:行号 函数 消息 字段
func (f LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		levelColor = gray
	case logrus.WarnLevel:
		levelColor = yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = red
	default:
		levelColor = blue
	}

	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	timestamp := entry.Time.Format(time.DateTime)
	appName := entry.Data["appName"]
	if appName == nil {
		appName = f.AppName
	}

	caller := ""
	if entry.HasCaller() {
		caller = fmt.Sprintf(" %s:%d %s", path.Base(entry.Caller.File), entry.Caller.Line, entry.Caller.Function)
	}
	fmt.Fprintf(b, "%s [%s] \x1b[%dm[%s]\x1b[0m%s %s%s\n",
		appName, timestamp, levelColor, entry.Level, caller, entry.Message, formatFields(entry.Data))
	return b.Bytes(), nil
}

// formatFields 按key排序拼接日志字段，appName已在行首输出
func formatFields(data logrus.Fields) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == "appName" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	var b bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, data[k])
	}
	return b.String()
}

// FileHook 日志钩子，按日期分割目录，普通日志与错误日志分文件存储
type FileHook struct {
	file     *os.File
	errFile  *os.File
	fileDate string
	logPath  string
	mu       sync.Mutex
}

// NewFileHook 创建写入指定目录的日志钩子
func NewFileHook(logPath string) *FileHook {
	if logPath == "" {
		logPath = "logs"
	}
	return &FileHook{logPath: logPath}
}

// Fire 写入日志文件，错误级别及以上同时写入err.log
func (hook *FileHook) Fire(entry *logrus.Entry) error {
	hook.mu.Lock()
	defer hook.mu.Unlock()

	timer := entry.Time.Format(time.DateOnly)
	line, err := entry.String()
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	if hook.fileDate != timer {
		if err := hook.rotateFiles(timer); err != nil {
			return err
		}
	}

	if _, err := hook.file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	if entry.Level <= logrus.ErrorLevel {
		if _, err := hook.errFile.WriteString(line); err != nil {
			return fmt.Errorf("failed to write to error log file: %w", err)
		}
	}
	return nil
}

// rotateFiles 关闭旧文件，在 logPath/日期 目录下打开新的日志文件
func (hook *FileHook) rotateFiles(timer string) error {
	if hook.file != nil {
		if err := hook.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}
	if hook.errFile != nil {
		if err := hook.errFile.Close(); err != nil {
			return fmt.Errorf("failed to close error log file: %w", err)
		}
	}

	dirName := filepath.Join(hook.logPath, timer)
	if err := os.MkdirAll(dirName, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	var err error
	hook.file, err = os.OpenFile(filepath.Join(dirName, "info.log"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	hook.errFile, err = os.OpenFile(filepath.Join(dirName, "err.log"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open error log file: %w", err)
	}

	hook.fileDate = timer
	return nil
}

// Levels 处理所有级别
func (hook *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// GetLogger 初始化日志实例，配置日志级别、格式和钩子
func GetLogger() *logrus.Entry {
	logger := logrus.New()
	l := global.Config.Logger

	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		logrus.Warnf("日志级别配置错误 自动修改为 info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.AddHook(NewFileHook(l.LogPath))

	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.DateTime,
		})
	} else {
		logger.SetFormatter(LogFormatter{AppName: l.AppName})
	}

	logger.SetReportCaller(true)
	return logger.WithField("appName", l.AppName)
}

// SetLogDefault 设置默认日志配置
func SetLogDefault() {
	logrus.SetFormatter(LogFormatter{AppName: global.Config.Logger.AppName})
	logrus.SetReportCaller(true)
}
