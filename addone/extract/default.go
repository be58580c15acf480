package extract

// ParseContext 提取上下文
type ParseContext struct {
	Platform string
	Command  string
	// Source 采集文件来源（路径或标识），仅用于日志与溯源
	Source string
}

// ExtractOutput 提取输出
// Interfaces 为接口名到计数器的映射；Order 记录接口首次出现的顺序，
// 供下游排序时作为稳定的并列基准（映射本身不保序）
type ExtractOutput struct {
	Platform   string
	Command    string
	Interfaces map[string]*InterfaceCounters
	Order      []string
}

// ExtractPlugin 平台提取插件接口
type ExtractPlugin interface {
	Name() string
	// SystemCommands 返回该平台支持结构化提取的命令清单
	SystemCommands() []string
	// Extract 将原始命令回显提取为接口计数器
	Extract(ctx ParseContext, raw string) (ExtractOutput, error)
}

// DefaultPlugin 系统默认提取插件
type DefaultPlugin struct{}

func (p *DefaultPlugin) Name() string { return "default" }

// SystemCommands 默认平台不提供内置命令
func (p *DefaultPlugin) SystemCommands() []string { return []string{} }

func (p *DefaultPlugin) Extract(ctx ParseContext, raw string) (ExtractOutput, error) {
	// 默认不提取，返回空结果
	return ExtractOutput{
		Platform:   ctx.Platform,
		Command:    ctx.Command,
		Interfaces: map[string]*InterfaceCounters{},
		Order:      nil,
	}, nil
}
