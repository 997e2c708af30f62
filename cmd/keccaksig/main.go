package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	conf, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := NewLogger(conf, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := newApp(conf, logger, os.Stdout).Run(os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
