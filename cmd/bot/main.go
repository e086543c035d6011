package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"artifactsbot/db"
	"artifactsbot/internal/adapter/gameapi"
	httpadapter "artifactsbot/internal/adapter/http"
	"artifactsbot/internal/adapter/metrics"
	metricsinmem "artifactsbot/internal/adapter/metrics/inmemory"
	metricsprom "artifactsbot/internal/adapter/metrics/prom"
	gormrepo "artifactsbot/internal/adapter/repo/gorm"
	memoryrepo "artifactsbot/internal/adapter/repo/memory"
	hertztransport "artifactsbot/internal/adapter/transport/hertz"
	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/app/roster"
	"artifactsbot/internal/app/runner"
	"artifactsbot/internal/app/scenario"
	"artifactsbot/internal/app/shared/cooldown"
	"artifactsbot/internal/app/status"
	"artifactsbot/internal/config"
	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/logger"
)

// allCharacters in -character runs the job on every character of the account.
const allCharacters = "all"

type options struct {
	ConfigPath string
	Characters []string
	Scenario   string
	Params     scenario.Params
	CreateName string
	CreateSex  string
	List       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var characters string
	fs := flag.NewFlagSet("artifactsbot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to the yaml config file")
	fs.StringVar(&characters, "character", "", "comma separated characters to drive, or \"all\" (default: first character)")
	fs.StringVar(&opts.Scenario, "scenario", "", "scenario to run")
	fs.IntVar(&opts.Params.Quantity, "quantity", 1, "target quantity")
	fs.BoolVar(&opts.Params.Sell, "sell", false, "sell the crafted result")
	fs.StringVar(&opts.Params.Item, "item", "", "item code for sell_item")
	fs.IntVar(&opts.Params.Repeats, "repeats", 1, "number of times to run the scenario")
	fs.StringVar(&opts.CreateName, "create-name", "", "name of the character created when the account has none")
	fs.StringVar(&opts.CreateSex, "create-sex", "r", "sex of the created character: m, f or r")
	fs.BoolVar(&opts.List, "list", false, "list the scenarios each character may run and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	for _, name := range strings.Split(characters, ",") {
		if name = strings.TrimSpace(name); name != "" {
			opts.Characters = append(opts.Characters, name)
		}
	}
	if opts.Params.Quantity < 0 || opts.Params.Repeats < 0 {
		return options{}, errors.New("-quantity and -repeats must not be negative")
	}
	if opts.Scenario == "" && !opts.List {
		return options{}, errors.New("one of -scenario or -list is required")
	}
	return opts, nil
}

// targets resolves the requested character names against the roster.
func targets(requested []string, chars []game.Character) ([]string, error) {
	if len(chars) == 0 {
		return nil, roster.ErrNoCharacters
	}
	if len(requested) == 0 {
		return []string{chars[0].Name}, nil
	}
	known := make(map[string]bool, len(chars))
	all := make([]string, 0, len(chars))
	for _, c := range chars {
		known[c.Name] = true
		all = append(all, c.Name)
	}
	var out []string
	for _, name := range requested {
		if strings.EqualFold(name, allCharacters) {
			return all, nil
		}
		if !known[name] {
			return nil, fmt.Errorf("character %q is not on this account", name)
		}
		out = append(out, name)
	}
	return out, nil
}

type bot struct {
	API     ports.GameAPI
	Waiter  ports.Waiter
	Journal ports.ActionJournal
	Config  *config.Config
	Logger  *zap.Logger
	Out     io.Writer

	runner *runner.Runner
	kpi    *metricsinmem.Recorder
	prom   *metricsprom.Recorder
}

func (b *bot) init() {
	if b.Logger == nil {
		b.Logger = zap.NewNop()
	}
	if b.Out == nil {
		b.Out = io.Discard
	}
	b.kpi = metricsinmem.NewRecorder()
	b.prom = metricsprom.NewRecorder()
	b.runner = &runner.Runner{
		API:           b.API,
		Waiter:        b.Waiter,
		Journal:       b.Journal,
		Metrics:       metrics.Tee{b.kpi, b.prom},
		Logger:        b.Logger,
		Scenario:      scenario.Config{MaxLoopActions: b.Config.Scenario.MaxLoopActions},
		LogLastAction: b.Config.Scenario.LogLastAction,
	}
}

func (b *bot) run(ctx context.Context, opts options) error {
	if b.runner == nil {
		b.init()
	}
	if _, err := (status.UseCase{API: b.API, Logger: b.Logger}).Execute(ctx); err != nil {
		return err
	}

	if addr := b.Config.Ops.Addr; addr != "" {
		srv := httpadapter.NewServer(addr, httpadapter.Handler{
			Characters: b.runner,
			Journal:    b.Journal,
			KPI:        b.kpi,
			Metrics:    b.prom.Gatherer(),
		})
		go srv.Spin()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				b.Logger.Warn("ops server shutdown", zap.Error(err))
			}
		}()
		b.Logger.Info("ops server listening", zap.String("addr", addr))
	}

	chars, err := (roster.UseCase{API: b.API}).Ensure(ctx, opts.CreateName, opts.CreateSex)
	if err != nil {
		return fmt.Errorf("load characters: %w", err)
	}
	names, err := targets(opts.Characters, chars)
	if err != nil {
		return err
	}

	if opts.List {
		return b.list(ctx, names)
	}
	jobs := make([]runner.Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, runner.Job{Character: name, Scenario: opts.Scenario, Params: opts.Params})
	}
	if err := b.runner.Run(ctx, jobs); err != nil {
		return err
	}
	snap := b.kpi.Snapshot()
	b.Logger.Info("run finished",
		zap.Strings("characters", names),
		zap.String("scenario", opts.Scenario),
		zap.Uint64("actions", snap.ActionTotal),
		zap.Uint64("failures", snap.ActionFailure),
	)
	return nil
}

func (b *bot) list(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := b.runner.Session(name).Executor.Select(ctx, name); err != nil {
			return fmt.Errorf("select %s: %w", name, err)
		}
		listings, _ := b.runner.Eligible(name)
		fmt.Fprintf(b.Out, "%s:\n", name)
		for _, l := range listings {
			fmt.Fprintf(b.Out, "  %s: %s\n", l.Category, strings.Join(l.Scenarios, ", "))
		}
	}
	return nil
}

func openJournal(cfg config.JournalConfig, zl *zap.Logger) (ports.ActionJournal, error) {
	if cfg.DSN == "" {
		zl.Info("action journal kept in memory")
		return memoryrepo.NewActionJournalRepo(memoryrepo.NewStore()), nil
	}
	if err := gormrepo.ApplyMigrations(cfg.DSN, db.Migrations, "migrations"); err != nil {
		return nil, err
	}
	gdb, err := gormrepo.OpenPostgres(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	zl.Info("action journal stored in postgres")
	return gormrepo.NewActionJournalRepo(gdb), nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := hertztransport.New(hertztransport.Config{
		BaseURL:     cfg.API.BaseURL,
		Token:       cfg.API.Token,
		Timeout:     cfg.API.Timeout,
		MaxAttempts: cfg.API.Retry.MaxAttempts,
		Backoff:     cfg.API.Retry.Backoff,
	}, zl.Named("transport"))
	if err != nil {
		zl.Fatal("build transport", zap.Error(err))
	}
	journal, err := openJournal(cfg.Journal, zl)
	if err != nil {
		zl.Fatal("open journal", zap.Error(err))
	}

	b := &bot{
		API:     gameapi.New(tr),
		Waiter:  cooldown.TimerWaiter{},
		Journal: journal,
		Config:  cfg,
		Logger:  zl,
		Out:     os.Stdout,
	}
	err = b.run(ctx, opts)
	switch {
	case errors.Is(err, status.ErrServerUnavailable):
		zl.Fatal("status check failed", zap.Error(err))
	case errors.Is(err, context.Canceled):
		zl.Info("interrupted")
	case err != nil:
		zl.Error("run stopped", zap.Error(err))
	}
}
