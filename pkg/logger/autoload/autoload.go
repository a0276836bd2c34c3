// Package autoload initializes the global logger from the LOG environment
// prefix as a side effect of being imported.
package autoload

import (
	configx "github.com/teerapat/estate-call-agent/pkg/config"
	logx "github.com/teerapat/estate-call-agent/pkg/logger"
)

func init() {
	conf, err := configx.Load[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*conf)
}
