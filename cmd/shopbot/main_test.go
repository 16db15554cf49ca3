package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgard/shopbot/internal/telegram/telegramtest"
)

func TestRunFailsWithoutToken(t *testing.T) {
	server := telegramtest.NewServer(t)
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_SERVER_URL", server.URL)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	code := run(context.Background(), filepath.Join(t.TempDir(), "config.yaml"))

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, strings.Count(buf.String(), "level=ERROR"))
	assert.Contains(t, buf.String(), "Failed to load configuration")
	assert.Empty(t, server.Calls("getMe"), "no network call before the token is validated")
}
