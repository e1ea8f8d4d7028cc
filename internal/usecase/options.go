// Package usecase contains the application services of the booking API.
// Each use case validates its command, coordinates entities and domain services,
// and persists through the repository ports inside a single unit of work.
package usecase

import (
	"context"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// Config contains optional collaborators for the use cases.
// Nil fields are replaced by defaults.
type Config struct {
	// Clock supplies the current time (default: system clock)
	Clock timeutil.Clock

	// Publisher receives reservation events after commit (default: discard)
	Publisher domain.EventPublisher
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Clock:     timeutil.NewRealClock(),
		Publisher: domain.NopPublisher{},
	}
}

func resolveConfig(config *Config) Config {
	cfg := DefaultConfig()
	if config != nil {
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Publisher != nil {
			cfg.Publisher = config.Publisher
		}
	}
	return cfg
}

// directTx runs fn without a transaction. It is used when no Transactor is wired.
type directTx struct{}

func (directTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
