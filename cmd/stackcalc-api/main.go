// Package main StackCalc API
// @title StackCalc API
// @version 1.0
// @description HTTP API for evaluating Reverse Polish Notation arithmetic expressions
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/lfsilva/stackcalc/docs"
	"github.com/lfsilva/stackcalc/internal/router"
	"github.com/lfsilva/stackcalc/internal/server"
	pkgserver "github.com/lfsilva/stackcalc/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg).
		SetupHealthChecks("/health", pkgserver.NewOkHealthChecker()).
		SetupOpenApi("/swagger/*")

	router.NewEvalRouter(s.Echo).Bind()

	slog.Info("Starting StackCalc API", "port", cfg.Port)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
