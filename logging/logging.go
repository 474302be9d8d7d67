package logging

import (
	// Go Internal Packages
	"os"

	// External Packages
	_ "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
)

// New builds the logfmt production logger used by every binary.
func New(level, service string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = service
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}
