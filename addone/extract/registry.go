package extract

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[string]ExtractPlugin{
		"default": &DefaultPlugin{},
	}
)

// Register 注册平台提取插件
func Register(name string, plugin ExtractPlugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = plugin
}

// Get 获取指定平台的提取插件
func Get(name string) ExtractPlugin {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if p, ok := registry[name]; ok {
		return p
	}
	return registry["default"]
}
