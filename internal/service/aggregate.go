package service

// FleetTotals 全网汇总（仅统计通过过滤的高流量接口）
type FleetTotals struct {
	InputPackets  int64 `json:"input_packets"`
	OutputPackets int64 `json:"output_packets"`
	InputErrors   int64 `json:"input_errors"`
	CRCErrors     int64 `json:"crc_errors"`
	OutputErrors  int64 `json:"output_errors"`
	InputDrops    int64 `json:"input_drops"`
	OutputDrops   int64 `json:"output_drops"`

	// OverallErrorCRCRatio = (Σinput_errors + Σcrc_errors) / Σinput_packets × 100
	OverallErrorCRCRatio float64 `json:"overall_error_crc_ratio"`
}

// Aggregate 对过滤后的接口序列逐字段求和并计算全网比率
func Aggregate(metrics []InterfaceMetrics) FleetTotals {
	var t FleetTotals
	for i := range metrics {
		m := &metrics[i]
		t.InputPackets += m.InputPackets
		t.OutputPackets += m.OutputPackets
		t.InputErrors += m.InputErrors
		t.CRCErrors += m.CRCErrors
		t.OutputErrors += m.OutputErrors
		t.InputDrops += m.InputDrops
		t.OutputDrops += m.OutputDrops
	}
	t.OverallErrorCRCRatio = percentOf(t.InputErrors+t.CRCErrors, t.InputPackets)
	return t
}
