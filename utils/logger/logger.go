package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the shared zap logger. Anything other than "production"
// gets the development config.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
