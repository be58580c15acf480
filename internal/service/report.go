package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// 报告呈现层：将 Report 渲染为固定宽度的文本表格。
// 列宽、千分位与 6 位小数百分比均为呈现约定，核心数据不依赖这里的任何格式

// WriteReport 渲染完整报告：错误+CRC 头部视图、输出错误头部视图、
// 全量排名与全网汇总
func WriteReport(w io.Writer, rpt *Report, topErrCRC, topOutErr int) {
	writeTopErrorCRC(w, rpt, topErrCRC)
	writeTopOutputErrors(w, rpt, topOutErr)
	writeCompleteRanking(w, rpt)
	writeFleetTotals(w, rpt)
}

func writeTopErrorCRC(w io.Writer, rpt *Report, n int) {
	rule := strings.Repeat("=", 120)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COMPREHENSIVE INTERFACE ERROR AND CRC ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Analysis of high-traffic interfaces, showing (Error + CRC) / Input_Packets ratio")
	fmt.Fprintln(w, rule)

	if len(rpt.Metrics) == 0 {
		fmt.Fprintln(w, "\nNo qualifying interface data found (after filtering test ports).")
		return
	}

	top := TopErrorCRC(rpt.Metrics, n)

	fmt.Fprintln(w, "\nSUMMARY:")
	fmt.Fprintf(w, "Total high-traffic interfaces analyzed: %d\n", len(rpt.Metrics))
	problems := 0
	for i := range rpt.Metrics {
		if rpt.Metrics[i].ErrorCRCRatio > 0 {
			problems++
		}
	}
	fmt.Fprintf(w, "Interfaces with error/CRC issues: %d\n", problems)
	fmt.Fprintf(w, "Percentage with issues: %.1f%%\n", float64(problems)/float64(len(rpt.Metrics))*100)

	fmt.Fprintf(w, "\nTOP %d INTERFACES BY (ERROR + CRC) / INPUT_PACKETS RATIO:\n", n)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "%-4s %-25s %-12s %-12s %-15s %-10s\n",
		"Rank", "Interface", "(E+CRC)%", "Error+CRC", "Input Pkts", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i := range top {
		m := &top[i]
		fmt.Fprintf(w, "%-4d %-25s %-12.6f %-12s %-15s %-10s\n",
			i+1, m.Name, m.ErrorCRCRatio,
			humanize.Comma(m.ErrorCRCSum()), humanize.Comma(m.InputPackets),
			ClassifyTop(m.ErrorCRCRatio))
	}

	fmt.Fprintf(w, "\nDETAILED BREAKDOWN OF TOP %d:\n", n)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for i := range top {
		m := &top[i]
		fmt.Fprintf(w, "\n%d. Interface: %s\n", i+1, m.Name)
		fmt.Fprintf(w, "   Input Packets:        %s\n", humanize.Comma(m.InputPackets))
		fmt.Fprintf(w, "   Input Errors:         %s\n", humanize.Comma(m.InputErrors))
		fmt.Fprintf(w, "   CRC Errors:           %s\n", humanize.Comma(m.CRCErrors))
		fmt.Fprintf(w, "   Error + CRC Sum:      %s\n", humanize.Comma(m.ErrorCRCSum()))
		fmt.Fprintf(w, "   (Error+CRC)/Input:    %.6f%%\n", m.ErrorCRCRatio)
		fmt.Fprintf(w, "   Error/Input Ratio:    %.6f%%\n", m.ErrorRatio)
		fmt.Fprintf(w, "   CRC/Input Ratio:      %.6f%%\n", m.CRCRatio)
		if m.FrameErrors > 0 {
			fmt.Fprintf(w, "   Frame Errors:         %s\n", humanize.Comma(m.FrameErrors))
		}
		if m.OutputErrors > 0 {
			fmt.Fprintf(w, "   Output Errors:        %s\n", humanize.Comma(m.OutputErrors))
		}
		if m.InputDrops > 0 || m.OutputDrops > 0 {
			fmt.Fprintf(w, "   Input Drops:          %s\n", humanize.Comma(m.InputDrops))
			fmt.Fprintf(w, "   Output Drops:         %s\n", humanize.Comma(m.OutputDrops))
		}
	}
}

func writeTopOutputErrors(w io.Writer, rpt *Report, n int) {
	top := TopOutputErrors(rpt.Metrics, n)
	if len(top) == 0 {
		fmt.Fprintln(w, "\nNO OUTPUT ERRORS FOUND")
		fmt.Fprintln(w, strings.Repeat("=", 50))
		fmt.Fprintln(w, "All high-traffic interfaces have 0 output errors.")
		return
	}

	fmt.Fprintf(w, "\nTOP %d INTERFACES BY OUTPUT ERROR RATIO:\n", n)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "Analysis of interfaces with output errors / output_packets")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "%-4s %-25s %-12s %-15s %-15s %-10s\n",
		"Rank", "Interface", "Output Err%", "Output Errors", "Output Pkts", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i := range top {
		m := &top[i]
		fmt.Fprintf(w, "%-4d %-25s %-12.6f %-15s %-15s %-10s\n",
			i+1, m.Name, m.OutputErrorRatio,
			humanize.Comma(m.OutputErrors), humanize.Comma(m.OutputPackets),
			ClassifyTop(m.OutputErrorRatio))
	}

	fmt.Fprintf(w, "\nDETAILED BREAKDOWN OF TOP %d OUTPUT ERROR INTERFACES:\n", n)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for i := range top {
		m := &top[i]
		fmt.Fprintf(w, "\n%d. Interface: %s\n", i+1, m.Name)
		fmt.Fprintf(w, "   Output Packets:       %s\n", humanize.Comma(m.OutputPackets))
		fmt.Fprintf(w, "   Output Errors:        %s\n", humanize.Comma(m.OutputErrors))
		fmt.Fprintf(w, "   Output Error Ratio:   %.6f%%\n", m.OutputErrorRatio)
		fmt.Fprintf(w, "   Underruns:            %s\n", humanize.Comma(m.Underruns))
		if m.OutputDrops > 0 {
			fmt.Fprintf(w, "   Output Drops:         %s\n", humanize.Comma(m.OutputDrops))
		}
	}
}

func writeCompleteRanking(w io.Writer, rpt *Report) {
	if len(rpt.Metrics) == 0 {
		return
	}

	fmt.Fprint(w, "\n\n")
	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintln(w, "COMPLETE HIGH-TRAFFIC INTERFACE ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintln(w, "All high-traffic interfaces, sorted by error+CRC ratio")
	fmt.Fprintln(w, strings.Repeat("=", 100))

	fmt.Fprintf(w, "%-25s %-15s %-10s %-12s %-15s\n",
		"Interface", "Input Pkts", "E+CRC", "(E+CRC)%", "Classification")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	ranked := CompleteRanking(rpt.Metrics)
	for i := range ranked {
		m := &ranked[i]
		fmt.Fprintf(w, "%-25s %-15s %-10s %-12.6f %-15s\n",
			m.Name, humanize.Comma(m.InputPackets), humanize.Comma(m.ErrorCRCSum()),
			m.ErrorCRCRatio, ClassifyFleet(*m))
	}
}

func writeFleetTotals(w io.Writer, rpt *Report) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintln(w, "NETWORK-WIDE STATISTICS (High-Traffic Interfaces Only)")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	t := rpt.Totals
	fmt.Fprintf(w, "Total Input Packets:      %s\n", humanize.Comma(t.InputPackets))
	fmt.Fprintf(w, "Total Output Packets:     %s\n", humanize.Comma(t.OutputPackets))
	fmt.Fprintf(w, "Total Input Errors:       %s\n", humanize.Comma(t.InputErrors))
	fmt.Fprintf(w, "Total CRC Errors:         %s\n", humanize.Comma(t.CRCErrors))
	fmt.Fprintf(w, "Total Output Errors:      %s\n", humanize.Comma(t.OutputErrors))
	fmt.Fprintf(w, "Total Input Drops:        %s\n", humanize.Comma(t.InputDrops))
	fmt.Fprintf(w, "Total Output Drops:       %s\n", humanize.Comma(t.OutputDrops))
	fmt.Fprintf(w, "Overall (Error+CRC)/Input Rate: %.6f%%\n", t.OverallErrorCRCRatio)
}
