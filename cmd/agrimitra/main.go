package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rushi2212/agrimitra/internal/cli"
	"github.com/rushi2212/agrimitra/internal/cli/formatter"
	"github.com/rushi2212/agrimitra/internal/db"
	"github.com/rushi2212/agrimitra/internal/knowledge"
	"github.com/rushi2212/agrimitra/internal/llm"
	"github.com/rushi2212/agrimitra/internal/market"
	"github.com/rushi2212/agrimitra/internal/pipeline"
	"github.com/rushi2212/agrimitra/internal/repository"
	"github.com/rushi2212/agrimitra/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	// Determine DB path: env var or default ~/.agrimitra/agrimitra.db
	dbPath := os.Getenv("AGRIMITRA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".agrimitra", "agrimitra.db")
	}

	// The crop knowledge file ships embedded; AGRIMITRA_KNOWLEDGE overrides it.
	kb, err := knowledge.Open(os.Getenv("AGRIMITRA_KNOWLEDGE"))
	if err != nil {
		return fmt.Errorf("loading crop knowledge: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work for transactional operations
	states := repository.NewSQLiteFarmStateRepo(database)
	prices := repository.NewSQLitePriceRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Structured logging to stderr when requested; silent otherwise.
	var logger *slog.Logger
	var useCaseObserver service.UseCaseObserver
	if os.Getenv("AGRIMITRA_LOG") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	// LLM advisory enrichment is optional; the pipeline runs without it.
	llmCfg := llm.LoadConfig()
	var enricher llm.AdvisoryEnricher = llm.NoopEnricher{}
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		enricher = llm.NewEnricher(llmCfg, llm.NewOllamaClient(llmCfg, observer))
	}

	orch := pipeline.NewOrchestrator(pipeline.Config{
		Knowledge: kb,
		States:    states,
		UoW:       uow,
		Enricher:  enricher,
		Logger:    logger,
	})

	predictor := market.NewPredictor(prices, market.SyntheticSource{}, uow)

	app := &cli.App{
		DayCycle: service.NewDayCycleService(orch, states, useCaseObserver),
		Plans:    service.NewPlanService(orch, states, useCaseObserver),
		Status:   service.NewStatusService(states, useCaseObserver),
		Outlook:  service.NewOutlookService(states, predictor, useCaseObserver),
	}

	return cli.NewRootCmd(app).Execute()
}
