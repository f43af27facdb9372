package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"olxcarcovers/config"
	"olxcarcovers/internal/mockgen"
	"olxcarcovers/internal/scraper"
	"olxcarcovers/logger"
	"olxcarcovers/services/cache"
	"olxcarcovers/services/pipeline"
	"olxcarcovers/services/processor"
	"olxcarcovers/services/publisher"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()

	// Load configuration; flags override individual fields
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "olxcarcovers",
		Short: "Scrape car cover listings from OLX into a console table and CSV",
		Long: "olxcarcovers fetches car cover listings from the OLX search pages,\n" +
			"shows them as a table and exports them to CSV. When the site cannot\n" +
			"be fetched or parsed, generated mock listings stand in so the output\n" +
			"is never empty.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&cfg.SearchURL, "url", cfg.SearchURL, "search URL to scrape")
	cmd.Flags().IntVar(&cfg.MaxPages, "pages", cfg.MaxPages, fmt.Sprintf("maximum number of pages to scrape (1-%d)", config.MaxPagesLimit))
	cmd.Flags().StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "output CSV filename")
	cmd.Flags().BoolVar(&opts.ForceMock, "mock", false, "use generated mock data instead of scraping")
	cmd.Flags().BoolVar(&opts.NoSave, "no-save", false, "skip saving results to CSV")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "suppress the banner and summary statistics")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, opts pipeline.Options) error {
	if !opts.Quiet {
		printBanner()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Default
	log.Info().
		Str("environment", cfg.Environment).
		Str("url", cfg.SearchURL).
		Int("pages", cfg.MaxPages).
		Msg("Starting run")

	// The block cache is optional; without it every run fetches
	var cacheSvc cache.CacheService
	if cfg.MemcacheAddr != "" {
		cacheSvc = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Using memcache block cache at %s", cfg.MemcacheAddr)
	}

	// The stream sink is optional; the table and CSV do not depend on it
	var pub publisher.Publisher
	if cfg.RedisAddr != "" {
		redisPub := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream, cfg.RedisStreamMaxLen)
		defer redisPub.Close()
		pub = redisPub
		logger.Info("Publishing listing batches to Redis at %s (stream %s)", cfg.RedisAddr, cfg.RedisStream)
	}

	site := scraper.NewSiteScraper(cfg, scraper.NewFetcher(cfg, cacheSvc), scraper.NewParser(scraper.DefaultSelectors()))
	p := pipeline.NewPipeline(cfg, site, mockgen.NewGenerator(), processor.NewProcessor(), pub, os.Stdout)

	if !opts.Quiet && !opts.ForceMock {
		fmt.Printf("Scraping %s (%d page(s), this may take a moment)\n", cfg.SearchURL, cfg.MaxPages)
	}

	result, err := p.Run(ctx, opts)
	if err != nil {
		// Ctrl+C is a clean exit, anything else fails the run
		if stderrors.Is(err, context.Canceled) {
			fmt.Println("\nScraping interrupted")
			return nil
		}
		return err
	}

	fmt.Println(successMessage(len(result.Listings)))
	if result.UsedMock && !opts.Quiet {
		fmt.Println("(Displayed using generated mock data because live scraping yielded nothing)")
	}
	if result.Saved {
		fmt.Printf("Data saved to %s\n", result.OutputFile)
	}

	log.Info().
		Int("count", len(result.Listings)).
		Bool("mock", result.UsedMock).
		Bool("saved", result.Saved).
		Msg("Run complete")

	return nil
}

func printBanner() {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("         OLX Car Cover Scraper")
	fmt.Println(line)
}

func successMessage(count int) string {
	switch count {
	case 0:
		return "No listings found. Try checking the search URL or network connection."
	case 1:
		return "Successfully found 1 car cover listing"
	default:
		return fmt.Sprintf("Successfully found %d car cover listings", count)
	}
}
