package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dasdy/datanav/logging"
	"github.com/stretchr/testify/assert"
)

func TestContextHandler(t *testing.T) {
	t.Run("adds context attributes to records", func(t *testing.T) {
		var buf bytes.Buffer

		logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

		ctx := logging.DatasetCtx(logging.PackageCtx("navigator"), "sales")
		logger.InfoContext(ctx, "stepped", "cursor", 3)

		out := buf.String()
		assert.Contains(t, out, "package=navigator")
		assert.Contains(t, out, "dataset=sales")
		assert.Contains(t, out, "cursor=3")
	})

	t.Run("plain context adds nothing", func(t *testing.T) {
		var buf bytes.Buffer

		logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})
		logger.InfoContext(context.Background(), "hello")

		assert.NotContains(t, buf.String(), "package=")
	})

	t.Run("sibling contexts do not share attributes", func(t *testing.T) {
		var buf bytes.Buffer

		logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

		base := logging.PackageCtx("web")
		first := logging.DatasetCtx(base, "first")
		_ = logging.DatasetCtx(base, "second")

		logger.InfoContext(first, "hello")

		assert.Contains(t, buf.String(), "dataset=first")
		assert.NotContains(t, buf.String(), "dataset=second")
	})
}

func TestNewHandlerLevel(t *testing.T) {
	var buf bytes.Buffer

	quiet := logging.NewHandler(&buf, false)
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, quiet.Enabled(context.Background(), slog.LevelInfo))

	verbose := logging.NewHandler(&buf, true)
	assert.True(t, verbose.Enabled(context.Background(), slog.LevelDebug))
}
