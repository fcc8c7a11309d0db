package zapx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSensitiveLogRedactsConfiguredField(t *testing.T) {
	var buf zaptest
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, &buf, zapcore.InfoLevel)
	logger := zap.New(NewCustomCore(core, "feedURL"))

	logger.Info("fetched feed", zap.String("feedURL", "https://news.example.com/rss?token=abcd1234secret"))

	require.Contains(t, buf.String(), "feedURL")
	assert.NotContains(t, buf.String(), "abcd1234secret")
}

func TestMaskMiddleShortValue(t *testing.T) {
	assert.Equal(t, "****", maskMiddle("short"))
}

type zaptest struct {
	bytes.Buffer
}

func (z *zaptest) Sync() error { return nil }
