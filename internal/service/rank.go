package service

import "sort"

// Severity 严重度分级
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityGood     Severity = "GOOD"
)

// ClassifyTop 头部视图四级阈值（所有边界均为严格大于）
// 头部视图入口已过滤 ratio > 0，(0, 0.01] 区间仍会落到 LOW
func ClassifyTop(ratio float64) Severity {
	switch {
	case ratio > 1.0:
		return SeverityCritical
	case ratio > 0.1:
		return SeverityHigh
	case ratio > 0.01:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ClassifyFleet 全量视图五级阈值，与头部视图刻度不同：
// 头部视图回答"哪些口最严重"，全量视图回答"全网总体水位"，两套阈值各自独立
func ClassifyFleet(m InterfaceMetrics) Severity {
	switch {
	case m.ErrorCRCRatio > 0.1:
		return SeverityCritical
	case m.ErrorCRCRatio > 0.01:
		return SeverityHigh
	case m.ErrorCRCRatio > 0.001:
		return SeverityMedium
	case m.ErrorCRCSum() > 0:
		return SeverityLow
	default:
		return SeverityGood
	}
}

// TopErrorCRC 错误+CRC 头部视图：仅保留 error_crc_ratio > 0 的接口，
// 按比率稳定降序后取前 n 个；并列项保持传入顺序（即提取顺序）
func TopErrorCRC(metrics []InterfaceMetrics, n int) []InterfaceMetrics {
	ranked := filterAndRank(metrics, func(m InterfaceMetrics) float64 { return m.ErrorCRCRatio })
	return truncate(ranked, n)
}

// TopOutputErrors 输出错误头部视图：仅保留 output_error_ratio > 0 的接口，
// 按比率稳定降序后取前 n 个
func TopOutputErrors(metrics []InterfaceMetrics, n int) []InterfaceMetrics {
	ranked := filterAndRank(metrics, func(m InterfaceMetrics) float64 { return m.OutputErrorRatio })
	return truncate(ranked, n)
}

// CompleteRanking 全量视图：不做前置过滤，按 error_crc_ratio 稳定降序
func CompleteRanking(metrics []InterfaceMetrics) []InterfaceMetrics {
	ranked := make([]InterfaceMetrics, len(metrics))
	copy(ranked, metrics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ErrorCRCRatio > ranked[j].ErrorCRCRatio
	})
	return ranked
}

func filterAndRank(metrics []InterfaceMetrics, key func(InterfaceMetrics) float64) []InterfaceMetrics {
	ranked := make([]InterfaceMetrics, 0, len(metrics))
	for _, m := range metrics {
		if key(m) > 0 {
			ranked = append(ranked, m)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	return ranked
}

func truncate(metrics []InterfaceMetrics, n int) []InterfaceMetrics {
	if n > 0 && len(metrics) > n {
		return metrics[:n]
	}
	return metrics
}
