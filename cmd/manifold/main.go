package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/umputun/manifold/pkg/auth"
	"github.com/umputun/manifold/pkg/config"
	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/manifold"
	"github.com/umputun/manifold/pkg/metrics"
	"github.com/umputun/manifold/pkg/permission"
	"github.com/umputun/manifold/pkg/plugins/builtin"
	"github.com/umputun/manifold/pkg/plugins/upstream"
	"github.com/umputun/manifold/pkg/repository"
	"github.com/umputun/manifold/pkg/schema"
	"github.com/umputun/manifold/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"manifold.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	Token struct {
		Principal string   `long:"principal" description:"issue a token for the principal and exit"`
		Roles     []string `long:"role" description:"roles of the principal"`
	} `group:"token" namespace:"token"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
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

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	SetupLog(opts.Debug, cfg.Auth.Secret)

	tokens, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to make token issuer: %w", err)
	}
	if opts.Token.Principal != "" {
		token, err := tokens.Issue(domain.Principal{ID: opts.Token.Principal, Roles: opts.Token.Roles})
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}
		fmt.Println(token)
		return nil
	}

	log.Printf("[INFO] starting manifold version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	var (
		collector *metrics.Collector
		gatherer  prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector, gatherer = metrics.NewCollector(reg), reg
	}

	registry := feeds.NewRegistry(repos.ServiceType)
	plugin := &builtin.Plugin{
		Metrics: collector,
		Upstream: upstream.Config{
			Timeout:      cfg.Upstream.Timeout,
			Retries:      cfg.Upstream.Retries,
			RateLimit:    cfg.Upstream.RateLimit,
			Burst:        cfg.Upstream.Burst,
			MaxBodySize:  cfg.Upstream.MaxBodySize,
			UserAgent:    cfg.Upstream.UserAgent,
			AllowPrivate: cfg.Upstream.AllowPrivate,
		},
	}
	if err := feeds.LoadPlugins(ctx, registry, plugin); err != nil {
		return fmt.Errorf("failed to load plugins: %w", err)
	}

	perms, err := permission.New(permission.Config{PolicyFile: cfg.Permission.PolicyFile})
	if err != nil {
		return fmt.Errorf("failed to make permission service: %w", err)
	}

	app := manifold.New(manifold.Params{
		Registry:    registry,
		ServiceRepo: repos.Service,
		FeedRepo:    repos.Feed,
		Permissions: perms,
		Schemas:     schema.NewService(),
		Metrics:     collector,
	})

	srv := server.New(server.Params{
		Config:  cfg,
		App:     app,
		Tokens:  tokens,
		Metrics: gatherer,
		Version: revision,
		Debug:   opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

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
