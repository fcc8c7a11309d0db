package feed

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ecloudclub/threadpool/zapx"
)

// NewLogger wraps base so any "feedURL" field is masked before reaching
// base's sink — feed and article URLs can carry API keys or session
// tokens in their query string, and Aggregator logs the URL on every
// fetch failure.
func NewLogger(base *zap.Logger) *zap.Logger {
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapx.NewCustomCore(core, "feedURL")
	}))
}
