package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"

	"olxcarcovers/config"
	"olxcarcovers/internal/mockgen"
	"olxcarcovers/internal/scraper"
	"olxcarcovers/logger"
	"olxcarcovers/services/processor"
	"olxcarcovers/services/publisher"
)

// Options control a single pipeline run
type Options struct {
	// ForceMock skips the live scrape entirely
	ForceMock bool
	// NoSave skips the CSV export
	NoSave bool
	// Quiet suppresses the summary statistics block
	Quiet bool
}

// Result reports what a run produced
type Result struct {
	Listings   []scraper.Listing
	UsedMock   bool
	Saved      bool
	OutputFile string
}

// Pipeline runs one scrape-process-export cycle. Whenever the live scrape
// fails or comes back empty, the whole run switches to generated mock data,
// so the output downstream of this point is never empty by accident.
type Pipeline struct {
	scraper    scraper.Scraper
	generator  *mockgen.Generator
	processor  *processor.Processor
	publisher  publisher.Publisher
	mockCount  int
	outputFile string
	out        io.Writer
	log        *logger.Logger
}

// NewPipeline creates a pipeline writing its tables to out. pub may be nil.
func NewPipeline(
	cfg *config.Config,
	sc scraper.Scraper,
	gen *mockgen.Generator,
	proc *processor.Processor,
	pub publisher.Publisher,
	out io.Writer,
) *Pipeline {
	return &Pipeline{
		scraper:    sc,
		generator:  gen,
		processor:  proc,
		publisher:  pub,
		mockCount:  cfg.MockCount,
		outputFile: cfg.OutputFile,
		out:        out,
		log:        logger.ForPipeline(),
	}
}

// Run executes the pipeline once. The returned error is fatal for the run;
// fetch-level failures never surface here, they divert to mock data instead.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	listings, usedMock, err := p.collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	listings = p.processor.Clean(listings)
	listings = p.processor.FilterValid(listings)

	result := &Result{
		Listings:   listings,
		UsedMock:   usedMock,
		OutputFile: p.outputFile,
	}

	p.processor.Display(p.out, listings)

	if !opts.Quiet && len(listings) > 0 {
		p.processor.DisplayStats(p.out, processor.ComputeStats(listings))
	}

	if !opts.NoSave && len(listings) > 0 {
		if err := p.processor.SaveCSV(listings, p.outputFile); err != nil {
			return result, err
		}
		result.Saved = true
	}

	p.publish(listings)

	return result, nil
}

// collect gathers raw listings, diverting to the generator when the live
// scrape is skipped, fails or yields nothing. Mock batches never mix with
// partial real results.
func (p *Pipeline) collect(ctx context.Context, opts Options) ([]scraper.Listing, bool, error) {
	if opts.ForceMock {
		p.log.Info().Int("count", p.mockCount).Msg("Mock mode, skipping live scrape")
		return p.generator.Generate(p.mockCount), true, nil
	}

	listings, err := p.scraper.Scrape(ctx)
	if err != nil {
		// An interrupted run aborts instead of falling back
		if stderrors.Is(err, context.Canceled) {
			return nil, false, err
		}
		p.log.Warn().Err(err).Str("scraper", p.scraper.Name()).Msg("Scrape failed, falling back to mock data")
		return p.generator.Generate(p.mockCount), true, nil
	}

	if len(listings) == 0 {
		p.log.Warn().Str("scraper", p.scraper.Name()).Msg("Scrape returned nothing, falling back to mock data")
		return p.generator.Generate(p.mockCount), true, nil
	}

	return listings, false, nil
}

// publish pushes the batch to the configured sink, best effort
func (p *Pipeline) publish(listings []scraper.Listing) {
	if p.publisher == nil || len(listings) == 0 {
		return
	}

	data, err := json.Marshal(listings)
	if err != nil {
		p.log.Error().Err(err).Msg("Failed to marshal listing batch")
		return
	}

	if err := p.publisher.Publish(data); err != nil {
		p.log.Warn().Err(err).Msg("Failed to publish listing batch")
		return
	}

	if err := p.publisher.Trim(); err != nil {
		p.log.Warn().Err(err).Msg("Failed to trim stream")
	}

	p.log.Info().Int("count", len(listings)).Msg("Published listing batch")
}
