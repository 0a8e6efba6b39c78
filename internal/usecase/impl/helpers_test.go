package impl

import (
	"io"
	"log/slog"

	"dirbot/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Directory.SearchLimit = 10
	cfg.Directory.RenderLimit = 5
	cfg.Directory.SupportEmail = "support@example.com"

	return cfg
}
