package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	std := logrus.StandardLogger()
	out, formatter, level := std.Out, std.Formatter, std.Level

	std.SetOutput(&buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)

	t.Cleanup(func() {
		std.SetOutput(out)
		std.SetFormatter(formatter)
		std.SetLevel(level)
	})

	return &buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncluiCorrelationID(t *testing.T) {
	buf := captureLogs(t)
	ctx, id := WithCorrelationID(context.Background())

	ForContext(ctx).Info("oi")

	assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
}

func TestWithFields_FiltraEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureLogs(t)

	L.WithFields(Fields{"action": "get-pages", "secret_name": "x"}).Info("oi")

	assert.Contains(t, buf.String(), `"action":"get-pages"`)
	assert.NotContains(t, buf.String(), "secret_name")
}

func TestWithFields_MantemTudoEmProducao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureLogs(t)

	L.WithFields(Fields{"action": "get-pages", "object_id": "123"}).Info("oi")

	assert.Contains(t, buf.String(), `"object_id":"123"`)
}
