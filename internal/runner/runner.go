// Package runner turns a batch of raw tokens into output lines. It picks the
// output mode from the pattern, drops tokens that do not normalize, and
// reports what it did through Metrics.
package runner

import (
	"context"
	"fmt"
	"furl/internal/config"
	"furl/internal/furl"
	"furl/pkg/logger"
	"furl/pkg/serrors"
	"iter"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DedupKeyword is the pattern selecting dedup mode.
const DedupKeyword = "dedup"

// Output modes, as reported by Batch.Mode.
const (
	ModeDedup    = "dedup"
	ModeField    = "field"
	ModeTemplate = "template"
)

const tracerName = "furl/internal/runner"

// Options configure how tokens are normalized and how dedup groups URLs.
type Options struct {
	// Policy is handed to the parser of every run.
	Policy furl.Policy
	// DedupMode is config.DedupAdjacent or config.DedupCluster.
	DedupMode string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	suffixMode, err := furl.ParseSuffixMode(cfg.Domain.SuffixMode)
	if err != nil {
		return Options{}, fmt.Errorf("invalid domain settings: %w", err)
	}

	return Options{
		Policy: furl.Policy{
			StrictDomains:    cfg.Domain.Strict,
			PrivateNeedsRoot: cfg.Domain.PrivateNeedsRoot,
			SuffixMode:       suffixMode,
		},
		DedupMode: cfg.Dedup.Mode,
	}, nil
}

// Batch is the outcome of one run.
type Batch struct {
	// Mode is one of ModeDedup, ModeField or ModeTemplate.
	Mode string
	// URLs holds the records that normalized, in input order.
	URLs []*furl.URL
	// Dropped counts the tokens that did not.
	Dropped int

	lines iter.Seq[string]
}

// Lines yields the output lines. Dedup output is in sorted order, every other
// mode keeps input order. The sequence can be ranged over more than once.
func (b *Batch) Lines() iter.Seq[string] { return b.lines }

// Collect returns all lines of the batch.
func (b *Batch) Collect() []string {
	var res []string
	for line := range b.lines {
		res = append(res, line)
	}

	return res
}

type runner struct {
	options Options
	parser  *furl.Parser
	metrics Metrics
	tracer  trace.Tracer
}

// Run normalizes tokens and selects the output mode from pattern: the dedup
// keyword, a field name or alias, or otherwise a template. Tokens that fail
// to normalize are dropped, logged at debug level and counted.
func (r *runner) Run(ctx context.Context, pattern string, tokens []string) (*Batch, error) {
	if pattern == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "pattern is empty")
	}

	ctx, span := r.tracer.Start(ctx, "runner.Run", trace.WithAttributes(
		attribute.String("pattern", pattern),
		attribute.Int("tokens", len(tokens)),
	))
	defer span.End()

	start := time.Now()
	batch := &Batch{}
	batch.URLs, batch.Dropped = r.parse(ctx, tokens)

	field, isField := furl.Lookup(pattern)
	switch {
	case pattern == DedupKeyword:
		batch.Mode = ModeDedup
		kept := r.dedup(batch.URLs)
		if merged := len(batch.URLs) - len(kept); merged > 0 {
			r.metrics.Merged(ctx, merged)
		}
		batch.lines = urlLines(kept)
	case isField:
		batch.Mode = ModeField
		batch.lines = fieldLines(field, batch.URLs)
	default:
		batch.Mode = ModeTemplate
		batch.lines = templateLines(furl.Compile(pattern), batch.URLs)
	}

	span.SetAttributes(attribute.String("mode", batch.Mode), attribute.Int("dropped", batch.Dropped))
	r.metrics.Batch(ctx, batch.Mode, time.Since(start))

	return batch, nil
}

func (r *runner) parse(ctx context.Context, tokens []string) ([]*furl.URL, int) {
	urls := make([]*furl.URL, 0, len(tokens))
	dropped := 0
	for _, token := range tokens {
		u, err := r.parser.Parse(token)
		if err != nil {
			dropped++
			reason := serrors.ErrInternal.Error()
			if kind, ok := serrors.KindOf(err); ok {
				reason = kind.Error()
			}
			logger.Debug(ctx, "dropping token", zap.String("token", token), zap.String("reason", reason), zap.Error(err))
			r.metrics.Dropped(ctx, reason)

			continue
		}

		r.metrics.Parsed(ctx, u.Explicit)
		urls = append(urls, u)
	}

	return urls, dropped
}

func (r *runner) dedup(urls []*furl.URL) []*furl.URL {
	if r.options.DedupMode == config.DedupCluster {
		return furl.Cluster(urls)
	}

	return furl.Dedup(urls)
}

func urlLines(urls []*furl.URL) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, u := range urls {
			if !yield(u.String()) {
				return
			}
		}
	}
}

// fieldLines prints present, non-empty values only.
func fieldLines(field *furl.Field, urls []*furl.URL) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, u := range urls {
			if field.IsSequence() {
				for s := range field.Each(u) {
					if s != "" && !yield(s) {
						return
					}
				}

				continue
			}

			if v := field.Value(u); v.Present() && v.String() != "" {
				if !yield(v.String()) {
					return
				}
			}
		}
	}
}

// templateLines prints one line per URL, even when the rendering is empty.
func templateLines(tmpl *furl.Template, urls []*furl.URL) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, u := range urls {
			if !yield(tmpl.Render(u)) {
				return
			}
		}
	}
}

// New creates a Runner reporting to metrics and configured with options.
func New(metrics Metrics, options Options) Runner {
	return &runner{
		options: options,
		parser:  furl.NewParser(options.Policy),
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
}
