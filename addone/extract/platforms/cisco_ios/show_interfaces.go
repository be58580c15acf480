package cisco_ios

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/interrorpro/interrorpro/addone/extract"
)

// 接口头行：主接口与子接口（如 GigabitEthernet0/1、TenGigE0/0/0/1.100）
var interfaceHeaderRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9\-\./]+)\s+is\s+(up|down)`)

// fieldRule 单条统计行的匹配规则：命中后将捕获组写入当前接口的计数器
type fieldRule struct {
	re    *regexp.Regexp
	apply func(c *extract.InterfaceCounters, m []string)
}

// 统计行规则按固定顺序尝试，首个命中即停止（各模式互斥，一行至多命中一条）
var fieldRules = []fieldRule{
	{
		re: regexp.MustCompile(`5 minute input rate.*?(\d+) packets/sec`),
		apply: func(c *extract.InterfaceCounters, m []string) {
			c.InputRate = parseCount(m[1])
		},
	},
	{
		re: regexp.MustCompile(`5 minute output rate.*?(\d+) packets/sec`),
		apply: func(c *extract.InterfaceCounters, m []string) {
			c.OutputRate = parseCount(m[1])
		},
	},
	{
		re: regexp.MustCompile(`(\d+) packets input.*?(\d+) total input drops`),
		apply: func(c *extract.InterfaceCounters, m []string) {
			c.InputPackets = parseCount(m[1])
			c.InputDrops = parseCount(m[2])
		},
	},
	{
		re: regexp.MustCompile(`(\d+) packets output.*?(\d+) total output drops`),
		apply: func(c *extract.InterfaceCounters, m []string) {
			c.OutputPackets = parseCount(m[1])
			c.OutputDrops = parseCount(m[2])
		},
	},
	{
		re: regexp.MustCompile(`(\d+) input errors, (\d+) CRC, (\d+) frame, (\d+) overrun, (\d+) ignored, (\d+) abort`),
		apply: func(c *extract.InterfaceCounters, m []string) {
			c.InputErrors = parseCount(m[1])
			c.CRCErrors = parseCount(m[2])
			c.FrameErrors = parseCount(m[3])
			c.OverrunErrors = parseCount(m[4])
			c.IgnoredErrors = parseCount(m[5])
			c.AbortErrors = parseCount(m[6])
		},
	},
	{
		re: regexp.MustCompile(`(\d+) output errors, (\d+) underruns`),
		apply: func(c *extract.InterfaceCounters, m []string) {
			c.OutputErrors = parseCount(m[1])
			c.Underruns = parseCount(m[2])
		},
	},
}

// parseInterfaceCounters 处理 show interfaces 回显：
// 逐行扫描并维护"当前接口"游标，统计行写入当前接口；
// 未命中任何模式的行直接忽略（回显中存在大量与统计无关的描述行）。
// 同名接口头重复出现时，后者整体覆盖前者，但保留首次出现的顺序位置。
func parseInterfaceCounters(raw string) (map[string]*extract.InterfaceCounters, []string) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r", "\n"), "\n")
	stats := make(map[string]*extract.InterfaceCounters)
	order := make([]string, 0)
	var current *extract.InterfaceCounters

	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}

		if m := interfaceHeaderRe.FindStringSubmatch(ln); m != nil {
			name := m[1]
			if _, seen := stats[name]; !seen {
				order = append(order, name)
			}
			current = &extract.InterfaceCounters{Name: name}
			stats[name] = current
			continue
		}

		// 尚未遇到任何接口头之前的行没有归属，跳过
		if current == nil {
			continue
		}

		for _, rule := range fieldRules {
			if m := rule.re.FindStringSubmatch(ln); m != nil {
				rule.apply(current, m)
				break
			}
		}
	}

	return stats, order
}

// parseCount 捕获组均由 \d+ 产生，仅数字；超出 int64 范围时饱和为最大值
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return int64(^uint64(0) >> 1)
	}
	return n
}
