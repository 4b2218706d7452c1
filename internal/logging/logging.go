// Package logging constructs the application logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger for the given environment. "production" selects
// JSON output at info level; anything else selects the development console
// encoder at debug level.
func New(env string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log, nil
}
