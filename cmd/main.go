package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aifolio/internal/app"
	"aifolio/internal/config"
	"aifolio/internal/logger"
	"aifolio/internal/repository"
	"aifolio/internal/service"
	"aifolio/internal/util"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "aifolio",
		Short:         "estimation-weighted portfolio rebalancer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(rebalanceCmd(&configPath))
	root.AddCommand(scheduleCmd(&configPath))
	root.AddCommand(backtestCmd(&configPath))

	return root
}

// application wires every collaborator once, at startup. Nothing holds
// a process-wide singleton; everything is passed down explicitly.
type application struct {
	cfg               *config.Config
	alpacaRepository  repository.AlpacaRepository
	estimationService service.EstimationService
	backtestService   service.BacktestService
	rebalancer        app.RebalancerHandler
}

func newApplication(configPath string) (*application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	alpacaRepository := repository.NewAlpacaRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint)
	estimationRepository, err := repository.NewEstimationRepository(cfg.OpenAI.ApiKey, cfg.OpenAI.Model)
	if err != nil {
		return nil, err
	}

	snapshotService := service.NewSnapshotService(alpacaRepository, cfg.BarsTopLimit, cfg.NewsTopLimit)
	estimationService := service.NewEstimationService(
		snapshotService,
		estimationRepository,
		time.Duration(cfg.EstimationIntervalSeconds)*time.Second,
	)
	tradingService := service.NewTradingService(alpacaRepository)

	return &application{
		cfg:               cfg,
		alpacaRepository:  alpacaRepository,
		estimationService: estimationService,
		backtestService:   service.NewBacktestService(estimationService, alpacaRepository),
		rebalancer: app.RebalancerHandler{
			EstimationService:     estimationService,
			TradingService:        tradingService,
			AlpacaRepository:      alpacaRepository,
			Symbols:               cfg.Symbols,
			DefaultPortfolioTotal: decimal.NewFromFloat(cfg.DefaultPortfolioTotal),
		},
	}, nil
}

func newContext() context.Context {
	return context.WithValue(context.Background(), logger.ContextKey, logger.New())
}

func rebalanceCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rebalance",
		Short: "run one rebalancing pass now",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(*configPath)
			if err != nil {
				return err
			}
			return a.rebalancer.Rebalance(newContext(), time.Now())
		},
	}
}

func scheduleCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "run a rebalancing pass shortly after the next market open",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(*configPath)
			if err != nil {
				return err
			}
			ctx := newContext()
			log := logger.FromContext(ctx)

			clock, err := a.alpacaRepository.GetClock()
			if err != nil {
				return err
			}
			delay := service.NextRunDelay(clock, time.Now())

			done := make(chan error, 1)
			run := service.ScheduleRun(delay, func() {
				done <- a.rebalancer.Rebalance(ctx, time.Now())
			})
			log.Infof("rebalancing pass scheduled in %s at %s for %v", delay, run.At(), a.cfg.Symbols)

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-done:
				return err
			case <-sigs:
				if run.Cancel() {
					log.Info("scheduled run cancelled")
					return nil
				}
				// The pass already started; it runs to completion.
				return <-done
			}
		},
	}
}

func backtestCmd(configPath *string) *cobra.Command {
	var fromStr, toStr, outPath string

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "replay decisions over a date range and score them",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(*configPath)
			if err != nil {
				return err
			}

			from, err := time.ParseInLocation(time.DateOnly, fromStr, util.MarketLocation)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to, err := time.ParseInLocation(time.DateOnly, toStr, util.MarketLocation)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}

			response, err := a.backtestService.Run(newContext(), service.BacktestInput{
				Start:   from,
				End:     to,
				Symbols: a.cfg.Symbols,
			})
			if err != nil {
				return err
			}

			service.WriteBacktestReport(os.Stdout, response)

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := service.ExportBacktestCSV(f, response.Records); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outPath, "out", "", "optional csv export path")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
