// Package logger builds the zap logger handed to the server, service
// and store at construction. No package-level logger: every consumer
// receives its handle explicitly.
package logger

import (
	"go.uber.org/zap"
)

// New returns a sugared logger. jsonOutput selects machine-readable
// production encoding; otherwise a human-readable development config
// is used.
func New(jsonOutput bool) (*zap.SugaredLogger, error) {
	var (
		zl  *zap.Logger
		err error
	)
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zl, err = cfg.Build()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return zl.Sugar(), nil
}

// NewNop returns a no-op logger for tests and optional dependencies.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
