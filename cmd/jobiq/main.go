package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/jobiq/jobiq/pkg/company"
	"github.com/jobiq/jobiq/pkg/config"
	"github.com/jobiq/jobiq/pkg/content"
	"github.com/jobiq/jobiq/pkg/cors"
	"github.com/jobiq/jobiq/pkg/digest"
	"github.com/jobiq/jobiq/pkg/email"
	"github.com/jobiq/jobiq/pkg/ingest"
	"github.com/jobiq/jobiq/pkg/repository"
	"github.com/jobiq/jobiq/pkg/scheduler"
	"github.com/jobiq/jobiq/pkg/scoring"
	"github.com/jobiq/jobiq/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Debug   bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool   `short:"V" long:"version" description:"show version info"`
	NoColor bool   `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires all components together and blocks until the context ends
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLog(opts.Debug || cfg.Server.Debug, opts.NoColor, cfg.Digest.CronSecret, cfg.LLM.APIKey)
	lgr.Printf("[INFO] starting jobiq version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer repos.Close()

	// ingestion pipeline
	feeds := make([]ingest.Feed, len(cfg.Ingest.Feeds))
	for i, f := range cfg.Ingest.Feeds {
		feeds[i] = ingest.Feed{Name: f.Name, URL: f.URL}
	}
	feedParser := ingest.NewParser(cfg.Ingest.FetchTimeout, cfg.Ingest.UserAgent)
	processor := ingest.NewProcessor(feedParser, repos.Job, repos.Company, feeds,
		cfg.Ingest.MaxWorkers, cfg.Ingest.StaleAfter)

	// scoring, LLM optional
	var jobScorer scoring.JobScorer
	if cfg.LLM.Enabled {
		jobScorer = scoring.NewScorer(cfg.LLM)
	}
	scoreRunner := scoring.NewRunner(repos.Job, jobScorer, cfg.LLM.BatchSize)

	// company verification
	var verifier scheduler.Verifier
	if cfg.Verification.Enabled {
		extractor := content.NewHTTPExtractor(cfg.Verification.Timeout, cfg.Verification.UserAgent)
		verifier = company.NewVerifier(extractor, repos.Company,
			cfg.Verification.BatchSize, cfg.Verification.MaxConcurrent,
			cfg.Verification.RateLimit, cfg.Verification.MinTextLength)
	}

	// weekly digest
	renderer, err := email.NewRenderer(cfg.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to init email renderer: %w", err)
	}
	sender := email.NewConsoleSender(renderer)
	digester := digest.New(repos.User, repos.Job, sender, digest.Config{
		Window:  time.Duration(cfg.Digest.WindowDays) * 24 * time.Hour,
		MaxJobs: cfg.Digest.MaxJobs,
		Timeout: cfg.Digest.Timeout,
	})

	sched := scheduler.NewScheduler(processor, scoreRunner, verifier, nil, scheduler.Config{
		IngestInterval: time.Duration(cfg.Ingest.UpdateInterval) * time.Minute,
	})
	sched.Start(ctx)
	defer sched.Stop()

	corsPolicy := cors.NewPolicy(cfg.Server.BaseURL, cfg.Server.Debug || opts.Debug)
	corsPolicy.ExtensionPrefix = cfg.CORS.ExtensionPrefix

	srv := server.New(cfg, repos.Job, repos.User, digester, corsPolicy,
		cfg.Digest.CronSecret, revision, opts.Debug || cfg.Server.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	// keep credentials out of the logs
	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
