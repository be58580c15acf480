package service

import (
	"github.com/interrorpro/interrorpro/addone/extract"
)

// InterfaceMetrics 过滤后接口的派生指标（构建完成后只读）
// 仅为同时满足 total_packets > 0 且 max(input_rate, output_rate) ≥ 阈值的接口构建
type InterfaceMetrics struct {
	extract.InterfaceCounters

	TotalPackets int64 `json:"total_packets"`

	// 四个比率均为百分数；对应分母为 0 时取 0
	ErrorCRCRatio    float64 `json:"error_crc_ratio"`
	ErrorRatio       float64 `json:"error_ratio"`
	CRCRatio         float64 `json:"crc_ratio"`
	OutputErrorRatio float64 `json:"output_error_ratio"`
}

// ErrorCRCSum 输入错误与 CRC 错误之和（比率分子）
func (m *InterfaceMetrics) ErrorCRCSum() int64 {
	return m.InputErrors + m.CRCErrors
}

// BuildMetrics 按提取顺序遍历原始计数器，应用两道硬过滤并计算派生比率：
//  1. total_packets == 0 的接口整体丢弃（从未上报流量，多为 admin down 或闲置口）
//  2. max(input_rate, output_rate) < rateThreshold 的接口整体丢弃
//     （低流量口分母过小，错误比率不具统计意义）
//
// 返回序列保持提取顺序，作为下游稳定排序的并列基准
func BuildMetrics(stats map[string]*extract.InterfaceCounters, order []string, rateThreshold int64) []InterfaceMetrics {
	metrics := make([]InterfaceMetrics, 0, len(order))
	for _, name := range order {
		c, ok := stats[name]
		if !ok {
			continue
		}

		total := c.InputPackets + c.OutputPackets
		if total == 0 {
			continue
		}

		maxRate := c.InputRate
		if c.OutputRate > maxRate {
			maxRate = c.OutputRate
		}
		if maxRate < rateThreshold {
			continue
		}

		metrics = append(metrics, InterfaceMetrics{
			InterfaceCounters: *c,
			TotalPackets:      total,
			ErrorCRCRatio:     percentOf(c.InputErrors+c.CRCErrors, c.InputPackets),
			ErrorRatio:        percentOf(c.InputErrors, c.InputPackets),
			CRCRatio:          percentOf(c.CRCErrors, c.InputPackets),
			OutputErrorRatio:  percentOf(c.OutputErrors, c.OutputPackets),
		})
	}
	return metrics
}

// percentOf 百分比计算，分母为 0 时返回 0 而非报错
func percentOf(num, den int64) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
