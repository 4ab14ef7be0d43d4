package slackify

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger 全局日志记录器
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "slackify",
	Level:  log.WarnLevel,
})

// SetLogger 设置自定义日志记录器，nil 表示丢弃日志
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	Logger = logger
}
