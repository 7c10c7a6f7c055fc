package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, levelFromString(in), in)
	}
}

func TestInitReplacesGlobal(t *testing.T) {
	l, err := Init("debug", "development")
	require.NoError(t, err)
	assert.Same(t, l, FromContext(context.Background()))
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestFromContextFallsBack(t *testing.T) {
	assert.Same(t, log, FromContext(context.Background()))

	scoped := zap.NewNop().With(zap.String("request_id", "abc"))
	ctx := WithContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx))
}

func TestSetGinPropagatesToRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)

	scoped := zap.NewNop()
	SetGin(c, scoped)

	assert.Same(t, scoped, FromGin(c))
	assert.Same(t, scoped, FromContext(c.Request.Context()))
}
