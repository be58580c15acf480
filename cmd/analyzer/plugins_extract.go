package main

// 引入平台提取插件，触发各平台的 init() 完成注册
import (
	_ "github.com/interrorpro/interrorpro/addone/extract/platforms/cisco_ios"
)
