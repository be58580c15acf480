package cisco_ios

import (
	"strings"

	"github.com/interrorpro/interrorpro/addone/extract"
)

// Plugin 为 cisco_ios 平台提取插件
type Plugin struct{}

func (p *Plugin) Name() string { return "cisco_ios" }

// SystemCommands 返回系统内置的 Cisco IOS 提取命令（具备结构化提取支持）
func (p *Plugin) SystemCommands() []string {
	return []string{
		"show interfaces",
	}
}

// Extract 按命令分发到对应的文件级处理函数
func (p *Plugin) Extract(ctx extract.ParseContext, raw string) (extract.ExtractOutput, error) {
	cmd := strings.ToLower(strings.TrimSpace(ctx.Command))
	switch cmd {
	// show interfaces 及常见等价写法
	case "show interfaces", "show interface", "show int":
		stats, order := parseInterfaceCounters(raw)
		return extract.ExtractOutput{Platform: ctx.Platform, Command: ctx.Command, Interfaces: stats, Order: order}, nil

	default:
		return extract.ExtractOutput{Platform: ctx.Platform, Command: ctx.Command, Interfaces: map[string]*extract.InterfaceCounters{}, Order: nil}, nil
	}
}

func init() { extract.Register("cisco_ios", &Plugin{}) }
