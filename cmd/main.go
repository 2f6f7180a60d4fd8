package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/courtside/fastbreak/internal/adapters/http/api"
	app "github.com/courtside/fastbreak/internal/app"
	"github.com/courtside/fastbreak/internal/config"
	"github.com/courtside/fastbreak/internal/domain/scoring"
	"github.com/courtside/fastbreak/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// Upper bound for /simulate requests.
	maxRequestPossessions = 100_000
)

func main() {
	serve := flag.Bool("serve", false, "serve the HTTP API instead of running one local session")
	possessions := flag.Int("possessions", 0, "override the configured session length")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	if *possessions > 0 {
		cfg.Possessions = *possessions
	}

	model := scoring.New(
		scoring.WithScale(cfg.Rating.Scale()),
		scoring.WithParams(cfg.Weights),
	)
	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithModel(model),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.QueueSize),
		app.WithShardCount(cfg.ShardCount),
		app.WithSeed(cfg.Seed),
	)

	if *serve {
		runServer(ctx, cfg, svc, log)
		return
	}
	runOnce(ctx, cfg, svc, log)
}

// runOnce simulates a single session and prints the box score.
func runOnce(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) {
	summary, err := svc.RunSession(ctx, cfg.Possessions)
	if err != nil {
		log.Error(ctx, "session failed", logger.Error(err))
		return
	}

	entries, err := svc.TopN(ctx, cfg.MaxLeaderboardLimit)
	if err != nil {
		log.Error(ctx, "box score read failed", logger.Error(err))
		return
	}

	headline := color.New(color.FgCyan, color.Bold)
	_, _ = headline.Printf("\nSession: %d possessions, %d shots, %d makes (model pAvg %.3f)\n\n",
		cfg.Possessions, summary.Shots, summary.Makes, summary.PAvg)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Player", "PTS", "FGM", "FGA", "AST", "xPTS"})

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	var data [][]string
	for _, e := range entries {
		// Color points by whether the player beat the model's expectation.
		pts := strconv.Itoa(e.Points)
		switch {
		case float64(e.Points) > e.ExpectedPoints:
			pts = green(pts)
		case float64(e.Points) < e.ExpectedPoints:
			pts = red(pts)
		}
		data = append(data, []string{
			strconv.Itoa(e.Rank),
			e.Player,
			pts,
			strconv.Itoa(e.Makes),
			strconv.Itoa(e.Shots),
			strconv.Itoa(e.Assists),
			fmt.Sprintf("%.1f", e.ExpectedPoints),
		})
	}
	if err := table.Bulk(data); err != nil {
		log.Error(ctx, "rendering box score failed", logger.Error(err))
		return
	}
	if err := table.Render(); err != nil {
		log.Error(ctx, "rendering box score failed", logger.Error(err))
	}
}

// runServer exposes the simulation API until the context is canceled.
func runServer(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) {
	mux := http.NewServeMux()
	api.NewServer(svc, cfg.MaxLeaderboardLimit, maxRequestPossessions).Register(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server listening", logger.String("addr", cfg.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info(ctx, "shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", logger.Error(err))
			return
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutdown failed", logger.Error(err))
	}
}
