package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/features"
	"github.com/BenjaNor/FinalProject/internal/ingestion"
	"github.com/BenjaNor/FinalProject/internal/normalization"
	"github.com/BenjaNor/FinalProject/internal/observability"
	"github.com/BenjaNor/FinalProject/internal/storage"
	"github.com/BenjaNor/FinalProject/internal/storage/memory"
)

// ErrMissingPath is returned when an input file path is not configured.
var ErrMissingPath = errors.New("input path not set")

// Paths names the six input files of a run.
type Paths struct {
	Assets  string
	Cash    string
	Equity  string
	Profit  string
	Revenue string
	Prices  string
}

// Validate checks that every path is set.
func (p Paths) Validate() error {
	for _, f := range p.metricFiles() {
		if f.path == "" {
			return fmt.Errorf("%w: %s", ErrMissingPath, f.metric)
		}
	}
	if p.Prices == "" {
		return fmt.Errorf("%w: prices", ErrMissingPath)
	}
	return nil
}

type metricFile struct {
	metric domain.Metric
	path   string
}

func (p Paths) metricFiles() []metricFile {
	return []metricFile{
		{domain.MetricAssets, p.Assets},
		{domain.MetricCash, p.Cash},
		{domain.MetricEquity, p.Equity},
		{domain.MetricProfit, p.Profit},
		{domain.MetricRevenue, p.Revenue},
	}
}

// Options configures a pipeline run.
type Options struct {
	AnchorYear int                    // year of the first value column, 0 means ingestion.DefaultAnchorYear
	Mode       ingestion.ParseMode    // lenient or strict numeric parsing
	Store      storage.RecordStore    // must be empty and serves one run; nil means a fresh in-memory store per run
	Logger     *zerolog.Logger        // defaults to a no-op logger
	Metrics    *observability.Metrics // optional
	Clock      func() time.Time       // defaults to time.Now().UTC()
}

// Stats summarizes one pipeline run.
type Stats struct {
	StartedAt      time.Time
	Duration       time.Duration
	Sources        []ingestion.LoadStats
	Tickers        int
	Records        int
	FeatureRows    int
	ParseFallbacks int
	MissingCells   int
	MissingInputs  map[domain.Metric]int
	LabelCounts    [domain.LabelCount]int
}

// Result is the output of a pipeline run.
type Result struct {
	Features *features.Dataset
	Records  domain.Dataset // delta-annotated, year-ascending per ticker
	Stats    Stats
}

// Pipeline runs load -> join -> deltas -> features over one set of inputs.
type Pipeline struct {
	paths   Paths
	parse   ingestion.ParseOptions
	store   storage.RecordStore
	logger  zerolog.Logger
	metrics *observability.Metrics
	clock   func() time.Time
}

// New creates a pipeline for the given inputs.
func New(paths Paths, opts Options) *Pipeline {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	return &Pipeline{
		paths: paths,
		parse: ingestion.ParseOptions{
			AnchorYear: opts.AnchorYear,
			Mode:       opts.Mode,
			Logger:     logger,
			Metrics:    opts.Metrics,
		},
		store:   opts.Store,
		logger:  logger,
		metrics: opts.Metrics,
		clock:   clock,
	}
}

// BuildFeatureDataset runs the full pipeline and returns the feature
// matrix and label vector. Any I/O failure aborts the run.
func BuildFeatureDataset(ctx context.Context, paths Paths, opts Options) (*features.Dataset, error) {
	result, err := New(paths, opts).Run(ctx)
	if err != nil {
		return nil, err
	}
	return result.Features, nil
}

// Run executes the pipeline:
//  1. Compute price changes from the price-history CSV
//  2. Load the five wide metric CSVs
//  3. Join on the assets series
//  4. Store records, read them back per ticker year-sorted, compute deltas
//  5. Build feature rows and labels
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := p.clock()
	result, err := p.run(ctx, start)

	finished := p.clock()
	status := "success"
	if err != nil {
		status = "failure"
		p.logger.Error().Err(err).Msg("pipeline run failed")
	}
	p.metrics.RecordPipelineRun(status, finished.Sub(start).Seconds(), finished.Unix())

	if err != nil {
		return nil, err
	}
	result.Stats.Duration = finished.Sub(start)
	p.logger.Info().
		Int("tickers", result.Stats.Tickers).
		Int("records", result.Stats.Records).
		Int("feature_rows", result.Stats.FeatureRows).
		Int("parse_fallbacks", result.Stats.ParseFallbacks).
		Dur("duration", result.Stats.Duration).
		Msg("pipeline run complete")
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, start time.Time) (*Result, error) {
	if err := p.paths.Validate(); err != nil {
		return nil, err
	}

	stats := Stats{
		StartedAt:     start,
		MissingInputs: make(map[domain.Metric]int),
	}
	addSource := func(s ingestion.LoadStats) {
		stats.Sources = append(stats.Sources, s)
		stats.ParseFallbacks += s.Fallbacks
		stats.MissingCells += s.Missing
	}

	// 1. Price changes
	priceChanges, priceStats, err := ingestion.ComputePriceChanges(p.paths.Prices, p.parse)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}
	addSource(priceStats)

	// 2. Metric series
	series := make(map[domain.Metric]domain.MetricSeries, len(domain.FinancialMetrics))
	for _, f := range p.paths.metricFiles() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, loadStats, err := ingestion.LoadMetricSeries(f.path, p.parse)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", f.metric, err)
		}
		addSource(loadStats)
		series[f.metric] = s
	}

	// 3. Join
	joined := normalization.JoinMetrics(normalization.JoinInput{
		Assets:       series[domain.MetricAssets],
		Cash:         series[domain.MetricCash],
		Equity:       series[domain.MetricEquity],
		Profit:       series[domain.MetricProfit],
		Revenue:      series[domain.MetricRevenue],
		PriceChanges: priceChanges,
	})
	for _, records := range joined {
		for _, r := range records {
			for _, m := range r.Missing {
				stats.MissingInputs[m]++
				p.metrics.RecordMissingInput(m.String())
			}
		}
	}
	p.metrics.RecordJoined(joined.Len())

	// 4. Deltas
	store := p.store
	if store == nil {
		store = memory.NewRecordStore()
	}
	normalizer := normalization.NewRunner(store)
	if err := normalizer.Store(ctx, joined); err != nil {
		return nil, err
	}
	dataset, err := normalizer.NormalizeAll(ctx)
	if err != nil {
		return nil, err
	}

	// 5. Features
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs := features.Build(dataset)
	for _, l := range fs.Labels {
		p.metrics.RecordFeatureRow(int(l))
	}

	stats.Tickers = len(dataset)
	stats.Records = dataset.Len()
	stats.FeatureRows = fs.Len()
	stats.LabelCounts = fs.LabelCounts()

	return &Result{
		Features: fs,
		Records:  dataset,
		Stats:    stats,
	}, nil
}
