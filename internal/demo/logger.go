package demo

import "go.uber.org/zap"

// NewLogger builds the zap logger cmd/kernelsim installs before running
// a scenario. verbose enables debug-level output; otherwise only info
// and above are logged.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
