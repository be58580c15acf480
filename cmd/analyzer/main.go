package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/interrorpro/interrorpro/internal/config"
	"github.com/interrorpro/interrorpro/internal/service"
	"github.com/interrorpro/interrorpro/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "配置文件路径（默认按 ./configs/config.yaml 查找）")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 采集文件路径：位置参数优先，否则用配置默认值
	path := cfg.Input.Path
	if args := flag.Args(); len(args) > 0 {
		path = args[0]
	}

	logger.Infof("Parsing interface data from %s (platform=%s)", path, cfg.Input.Platform)
	logger.Infof("Filtering out test ports (5-minute rate < %d packets/sec)", cfg.Analysis.RateThreshold)

	rpt := service.AnalyzeFile(path, cfg)
	if len(rpt.Metrics) == 0 {
		logger.Warn("No interface data could be parsed from the file")
	}

	service.WriteReport(os.Stdout, rpt, cfg.Analysis.TopErrorCRC, cfg.Analysis.TopOutputErrors)

	// 输入缺失或解析为空同样以 0 退出，空报告即为统一的降级输出
}
