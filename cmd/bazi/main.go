// Command bazi is the only part of this module that imports cobra and
// the only caller of internal/config's Load (the one file read) and
// NewLogger: the core engine stays pure and I/O-free, per spec.md 7's
// "no errors are swallowed, retried, or logged within the core".
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hotea/bazi-insights/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadLogger(level string) *zap.Logger {
	logger, err := config.NewLogger(level)
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}
