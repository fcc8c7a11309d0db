package zapx

import (
	"go.uber.org/zap/zapcore"
)

// CustomCore wraps a zapcore.Core and masks the value of a configured log
// field before it reaches the underlying sink. It is used to keep feed
// URLs out of logs in full, since they can carry API keys or tokens in
// their query string.
type CustomCore struct {
	zapcore.Core
	redactKey string
}

// NewCustomCore wraps core so that any field named redactKey has its
// string value masked, keeping only a short prefix and suffix.
func NewCustomCore(core zapcore.Core, redactKey string) *CustomCore {
	return &CustomCore{
		Core:      core,
		redactKey: redactKey,
	}
}

func (z *CustomCore) Write(en zapcore.Entry, fields []zapcore.Field) error {
	for i, fd := range fields {
		if fd.Key == z.redactKey {
			fields[i].String = maskMiddle(fd.String)
		}
	}

	return z.Core.Write(en, fields)
}

func (z *CustomCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if z.Enabled(ent.Level) {
		return ce.AddCore(ent, z)
	}
	return ce
}

// maskMiddle keeps the first and last few characters of s and replaces the
// rest with asterisks. Short values are masked entirely rather than risk
// leaking most of the value through the unmasked edges.
func maskMiddle(s string) string {
	const edge = 4
	if len(s) <= edge*2 {
		return "****"
	}
	return s[:edge] + "****" + s[len(s)-edge:]
}
