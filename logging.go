// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "go.uber.org/zap"

// logger returns the engine's configured logger, or a no-op logger if none
// was supplied via WithLogger.
func (e *Engine) logger() *zap.Logger {
	if e.log == nil {
		return zap.NewNop()
	}
	return e.log
}
