package runner

import (
	"context"
	"time"
)

//go:generate mockgen -package mockrunner -source=interface.go -destination=mock/mockrunner.go *
type Runner interface {
	Run(ctx context.Context, pattern string, tokens []string) (*Batch, error)
}

// Metrics receives per-record and per-batch counters.
type Metrics interface {
	Parsed(ctx context.Context, explicitScheme bool)
	Dropped(ctx context.Context, reason string)
	Merged(ctx context.Context, count int)
	Batch(ctx context.Context, mode string, took time.Duration)
}
