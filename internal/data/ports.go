package data

import (
	"context"
	"errors"

	"finanzassistent/internal/core"
)

// Errors shared by all backends. Callers use errors.Is to decide whether
// a failed source can be degraded to an empty default.
var (
	ErrSourceNotFound  = errors.New("data file not found")
	ErrSourceMalformed = errors.New("data file malformed")
)

// Ports for inbound data sources.
type (
	TransactionSource interface {
		Transactions(ctx context.Context) ([]core.Transaction, error)
	}

	PreferenceSource interface {
		Preferences(ctx context.Context) (core.Preferences, error)
	}

	FitnessSource interface {
		Fitness(ctx context.Context) (core.FitnessData, error)
	}

	// Source bundles the three documents a dashboard run reads.
	Source interface {
		TransactionSource
		PreferenceSource
		FitnessSource
	}
)
