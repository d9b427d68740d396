package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := context.Background()
	l.Debug(ctx, "dbg", "k", "v1")
	l.Info(ctx, "inf", "k", "v2")
	l.Warn(ctx, "wrn", "k", "v3")
	l.Error(ctx, "err", "k", "v4")

	out := buf.String()
	require.Contains(t, out, "msg=dbg")
	require.Contains(t, out, "msg=inf")
	require.Contains(t, out, "msg=wrn")
	require.Contains(t, out, "msg=err")
	require.Contains(t, out, "k=v2")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := l.With("list", "abc")
	child.Info(context.Background(), "loaded")

	require.Contains(t, buf.String(), "list=abc")
}
