package extract

// InterfaceCounters 单接口原始计数器（提取期间逐行累积，提取结束后只读）
// 所有字段缺省为 0：回显中未出现对应统计行时保持默认值，不区分"显式为零"与"未上报"
type InterfaceCounters struct {
	Name string `json:"name"`

	InputPackets  int64 `json:"input_packets"`
	OutputPackets int64 `json:"output_packets"`

	// 5 分钟速率（packets/sec），仅用于流量过滤
	InputRate  int64 `json:"input_rate"`
	OutputRate int64 `json:"output_rate"`

	InputErrors   int64 `json:"input_errors"`
	CRCErrors     int64 `json:"crc_errors"`
	FrameErrors   int64 `json:"frame_errors"`
	OverrunErrors int64 `json:"overrun_errors"`
	IgnoredErrors int64 `json:"ignored_errors"`
	AbortErrors   int64 `json:"abort_errors"`

	OutputErrors int64 `json:"output_errors"`
	Underruns    int64 `json:"underruns"`

	InputDrops  int64 `json:"input_drops"`
	OutputDrops int64 `json:"output_drops"`
}
