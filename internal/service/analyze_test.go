package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/interrorpro/interrorpro/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/interrorpro/interrorpro/addone/extract/platforms/cisco_ios"
)

func testConfig() *config.Config {
	return &config.Config{
		Input: config.InputConfig{
			Platform: "cisco_ios",
			Command:  "show interfaces",
		},
		Analysis: config.AnalysisConfig{
			RateThreshold:   100000,
			TopErrorCRC:     10,
			TopOutputErrors: 5,
		},
	}
}

func writeCaptureFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "int_error.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestAnalyzeFilePipeline 完整管线：读取 → 提取 → 过滤 → 汇总
func TestAnalyzeFilePipeline(t *testing.T) {
	capture := `GigabitEthernet0/1 is up, line protocol is up
  5 minute input rate 12000000 bits/sec, 150000 packets/sec
     1000000 packets input, 128000000 bytes, 5 total input drops
     500 input errors, 300 CRC, 0 frame, 0 overrun, 0 ignored, 0 abort
GigabitEthernet0/2 is up, line protocol is up
  5 minute input rate 400 bits/sec, 50000 packets/sec
  5 minute output rate 400 bits/sec, 50000 packets/sec
     9000000 packets input, 128 bytes, 0 total input drops
     9999 input errors, 9999 CRC, 0 frame, 0 overrun, 0 ignored, 0 abort
`
	rpt := AnalyzeFile(writeCaptureFile(t, capture), testConfig())

	require.Len(t, rpt.Metrics, 1, "低速率接口必须被整体排除")
	m := rpt.Metrics[0]
	assert.Equal(t, "GigabitEthernet0/1", m.Name)
	assert.Equal(t, int64(150000), m.InputRate)
	assert.Equal(t, int64(500), m.InputErrors)
	assert.Equal(t, int64(300), m.CRCErrors)
	assert.InDelta(t, 0.08, m.ErrorCRCRatio, 1e-12)

	assert.Equal(t, int64(1000000), rpt.Totals.InputPackets)
	assert.InDelta(t, 0.08, rpt.Totals.OverallErrorCRCRatio, 1e-12)
}

// TestAnalyzeFileMissing 文件缺失时降级为空报告，不中止
func TestAnalyzeFileMissing(t *testing.T) {
	rpt := AnalyzeFile(filepath.Join(t.TempDir(), "no_such_file.txt"), testConfig())

	require.NotNil(t, rpt)
	assert.Empty(t, rpt.Metrics)
	assert.Zero(t, rpt.Totals.InputPackets)
	assert.Zero(t, rpt.Totals.OverallErrorCRCRatio)
	assert.Empty(t, TopErrorCRC(rpt.Metrics, 10))
	assert.Empty(t, TopOutputErrors(rpt.Metrics, 5))
	assert.Empty(t, CompleteRanking(rpt.Metrics))
}

// TestAnalyzeFileEmpty 空文件得到空报告，汇总全为 0
func TestAnalyzeFileEmpty(t *testing.T) {
	rpt := AnalyzeFile(writeCaptureFile(t, ""), testConfig())

	assert.Empty(t, rpt.Metrics)
	assert.Zero(t, rpt.Totals.OverallErrorCRCRatio)
}

// TestAnalyzeFileOutputErrorsWithoutPackets 只有输出错误行、没有输出报文行时，
// output_error_ratio 受除零保护为 0
func TestAnalyzeFileOutputErrorsWithoutPackets(t *testing.T) {
	capture := `GigabitEthernet0/7 is up, line protocol is up
  5 minute input rate 12000000 bits/sec, 150000 packets/sec
     1000000 packets input, 128000000 bytes, 0 total input drops
     3 output errors, 2 underruns
`
	rpt := AnalyzeFile(writeCaptureFile(t, capture), testConfig())

	require.Len(t, rpt.Metrics, 1)
	assert.Equal(t, int64(3), rpt.Metrics[0].OutputErrors)
	assert.Zero(t, rpt.Metrics[0].OutputErrorRatio)
	assert.Empty(t, TopOutputErrors(rpt.Metrics, 5))
}

// TestWriteReportRenders 报告渲染对空报告与非空报告都不崩溃且包含关键段落
func TestWriteReportRenders(t *testing.T) {
	capture := `GigabitEthernet0/1 is up, line protocol is up
  5 minute input rate 12000000 bits/sec, 150000 packets/sec
     1000000 packets input, 128000000 bytes, 5 total input drops
     500 input errors, 300 CRC, 0 frame, 0 overrun, 0 ignored, 0 abort
`
	rpt := AnalyzeFile(writeCaptureFile(t, capture), testConfig())

	var sb strings.Builder
	WriteReport(&sb, rpt, 10, 5)
	out := sb.String()
	assert.Contains(t, out, "GigabitEthernet0/1")
	assert.Contains(t, out, "0.080000")
	assert.Contains(t, out, "1,000,000")
	assert.Contains(t, out, "NO OUTPUT ERRORS FOUND")
	assert.Contains(t, out, "NETWORK-WIDE STATISTICS")

	sb.Reset()
	WriteReport(&sb, &Report{Metrics: []InterfaceMetrics{}}, 10, 5)
	assert.Contains(t, sb.String(), "No qualifying interface data found")
}
