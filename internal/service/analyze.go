package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/interrorpro/interrorpro/addone/extract"
	"github.com/interrorpro/interrorpro/internal/config"
	"github.com/interrorpro/interrorpro/internal/util"
	"github.com/interrorpro/interrorpro/pkg/logger"
)

// 输入边界的两类失败：文件缺失/不可达，与其余读取异常。
// 两者都在边界处记日志并降级为空报告，分析流程本身不会因坏输入中止
var (
	ErrSourceUnavailable = errors.New("input source unavailable")
	ErrSourceUnreadable  = errors.New("input source unreadable")
)

// Report 一次分析的全部结构化结果
// 三个报告视图与汇总均由 Metrics 派生，呈现层按需取用
type Report struct {
	Source  string             `json:"source"`
	Metrics []InterfaceMetrics `json:"metrics"`
	Totals  FleetTotals        `json:"totals"`
}

// AnalyzeFile 读取采集文件并执行完整分析管线：
// 读取（含编码归一）→ 平台插件提取 → 过滤与比率计算 → 汇总。
// 输入缺失或不可读时记录日志并返回空报告，调用方无需区分处理
func AnalyzeFile(path string, cfg *config.Config) *Report {
	raw, err := readCapture(path)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			logger.Errorf("capture file not found: %s", path)
		} else {
			logger.Errorf("failed to read capture file %s: %v", path, err)
		}
		return &Report{Source: path, Metrics: []InterfaceMetrics{}}
	}

	plugin := extract.Get(cfg.Input.Platform)
	out, err := plugin.Extract(extract.ParseContext{
		Platform: cfg.Input.Platform,
		Command:  cfg.Input.Command,
		Source:   path,
	}, raw)
	if err != nil {
		logger.Errorf("failed to extract interface data from %s: %v", path, err)
		return &Report{Source: path, Metrics: []InterfaceMetrics{}}
	}
	logger.Debugf("extracted %d interfaces from %s", len(out.Order), path)

	metrics := BuildMetrics(out.Interfaces, out.Order, cfg.Analysis.RateThreshold)
	logger.Infof("analyzed %d high-traffic interfaces (threshold %d packets/sec, %d parsed)",
		len(metrics), cfg.Analysis.RateThreshold, len(out.Order))

	return &Report{
		Source:  path,
		Metrics: metrics,
		Totals:  Aggregate(metrics),
	}
}

// readCapture 整体读入采集文件并归一为 UTF-8 文本
func readCapture(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return util.EnsureUTF8Bytes(b), nil
}
