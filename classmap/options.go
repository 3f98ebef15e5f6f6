package classmap

import (
	"go.uber.org/zap"

	"classmap-builder/options"
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger used during assembly. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger == nil {
			logger = zap.NewNop()
		}

		a.logger = logger
	}
}

// WithCategories restricts the leaf kinds the assembler accepts.
func WithCategories(allowed options.CategoryEnum) Option {
	return func(a *Assembler) {
		a.allowed = allowed
	}
}
