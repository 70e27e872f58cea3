package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	l, buf := newBufLogger(slog.LevelDebug)

	l.Debug(ctx, "dbg", "k", "v")
	l.Info(ctx, "inf")
	l.Warn(ctx, "wrn")
	l.Error(ctx, "err")

	out := buf.String()
	require.Contains(t, out, "dbg")
	require.Contains(t, out, "k=v")
	require.Contains(t, out, "inf")
	require.Contains(t, out, "wrn")
	require.Contains(t, out, "err")
}

func TestSlogLogger_With(t *testing.T) {
	ctx := context.Background()

	l, buf := newBufLogger(slog.LevelInfo)

	child := l.With("component", "api")
	child.Info(ctx, "request done")

	require.Contains(t, buf.String(), "component=api")
}
