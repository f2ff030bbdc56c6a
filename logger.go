package main

import "go.uber.org/zap"

// newLogger returns a development logger writing only to path, so logs
// never reach the terminal the UI is drawn on. An empty path disables
// logging.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
