package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Log      LogConfig      `mapstructure:"log"`
}

// InputConfig 采集文件输入配置
type InputConfig struct {
	// Path 默认采集文件路径（命令行未指定文件时使用）
	Path string `mapstructure:"path"`
	// Platform 回显来源平台，决定使用哪个提取插件
	Platform string `mapstructure:"platform"`
	// Command 回显对应的采集命令
	Command string `mapstructure:"command"`
}

// AnalysisConfig 分析配置
type AnalysisConfig struct {
	// RateThreshold 流量过滤阈值（packets/sec）：
	// max(input_rate, output_rate) 低于该值的接口视为测试口，整体排除
	RateThreshold int64 `mapstructure:"rate_threshold"`
	// TopErrorCRC 错误+CRC 视图展示的接口数
	TopErrorCRC int `mapstructure:"top_error_crc"`
	// TopOutputErrors 输出错误视图展示的接口数
	TopOutputErrors int `mapstructure:"top_output_errors"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

var globalConfig *Config

// Load 加载配置文件
// configPath 为空时按默认路径查找；默认路径下找不到配置文件不视为错误，
// 全部使用内置默认值（分析器需要能在任意目录下直接运行）
func Load(configPath string) (*Config, error) {
	viper.SetConfigType("yaml")

	// 设置默认值
	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// 默认配置文件路径
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("../configs")
		viper.AddConfigPath("../../configs")
	}

	// 设置环境变量前缀
	viper.SetEnvPrefix("INT_ANALYZER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 读取配置文件；显式指定路径时缺失视为错误
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &config
	return &config, nil
}

func setDefaults() {
	// 默认输入：Cisco IOS show interfaces 回显
	viper.SetDefault("input.path", "./data/int_error.txt")
	viper.SetDefault("input.platform", "cisco_ios")
	viper.SetDefault("input.command", "show interfaces")

	// 流量过滤阈值：5 分钟速率低于 100k packets/sec 的接口按测试口排除
	viper.SetDefault("analysis.rate_threshold", 100000)
	// 两个头部视图的默认展示数
	viper.SetDefault("analysis.top_error_crc", 10)
	viper.SetDefault("analysis.top_output_errors", 5)

	// 日志默认级别为 info（可通过 log.level 覆盖为 debug/warn/error 等）
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.output", "console")
	viper.SetDefault("log.file_path", "./logs/analyzer.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("log.compress", false)
}

// Get 获取全局配置
func Get() *Config {
	return globalConfig
}
