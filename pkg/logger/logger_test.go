package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	assert.NotNil(t, GetLogger())

	// plain context
	assert.NotNil(t, WithContext(context.Background()))
	assert.NotNil(t, WithContext(nil))

	// request id travels through either key form
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	assert.NotNil(t, WithContext(ctx))

	ctx = context.WithValue(context.Background(), "request_id", "req-2")
	assert.NotNil(t, WithContext(ctx))

	// the helpers must not panic
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	Debug(ctx, "debug message")
	LogRequest(ctx, "GET", "/health", 200, 5*time.Millisecond, "127.0.0.1")
}
