// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger: JSON production encoding or a colourless
// development console encoding, at the configured level.
func (l Log) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", l.Level, err)
	}

	var zc zap.Config
	switch l.Format {
	case "json":
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.DisableStacktrace = true

	return zc.Build()
}
