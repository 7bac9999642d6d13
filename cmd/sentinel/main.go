package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/config"
	"StockSentinel/internal/ml"
	"StockSentinel/internal/model"
	"StockSentinel/internal/report"
	"StockSentinel/internal/scanner"
	"StockSentinel/internal/scheduler"
	"StockSentinel/internal/strategy"
	"StockSentinel/internal/universe"
)

func main() {
	var (
		cfgPath = flag.String("config", "configs/config.yaml", "path to YAML config")
		mode    = flag.String("mode", "analyze", "analyze | dips | canslim | ai | daemon")
		symbol  = flag.String("symbol", "", "single symbol for analyze mode, or extra symbol for scans")
		index   = flag.String("index", "", "symbol universe override (NIFTY50, NIFTYBANK, NIFTYIT)")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	fetcher := collector.NewYahooFetcher(cfg.DataSource.SymbolSuffix, cfg.DataSource.Proxy)
	fundamentals := collector.NewYahooFundamentals(cfg.DataSource.SymbolSuffix, cfg.DataSource.Proxy)
	col := collector.New(fetcher, fundamentals, log)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	scanCfg := scanner.Config{
		Workers:         cfg.Scan.Workers,
		DailyBars:       cfg.Scan.DailyBars,
		ConfidenceFloor: cfg.Scan.ConfidenceFloor,
		Thresholds: strategy.Thresholds{
			LiquidityFloor: cfg.Scan.LiquidityFloor,
			LargeCapFloor:  cfg.Scan.LargeCapFloor,
		},
	}
	sc := scanner.New(col, scanCfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	symbols, err := buildUniverse(cfg, *index, *symbol)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve universe")
	}

	switch *mode {
	case "analyze":
		if *symbol == "" {
			log.Fatal().Msg("analyze mode needs -symbol")
		}
		runAnalyze(col, scanCfg, *symbol, log)
	case "dips":
		var trend = marketTrend(col, cfg.DataSource.Benchmark, cfg.Scan.DailyBars, log)
		fmt.Println(report.FormatMarketTrend(&trend))
		fmt.Println(report.FormatDipScan(sc.ScanDips(ctx, symbols)))
	case "canslim":
		fmt.Println(report.FormatCanslimScan(sc.ScanCanslim(ctx, symbols)))
	case "ai":
		fmt.Println(report.FormatAIScan(sc.ScanAI(ctx, symbols)))
	case "daemon":
		runDaemon(ctx, cancel, cfg, col, sc, symbols, log)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func buildUniverse(cfg *config.Config, indexFlag, symbolFlag string) ([]string, error) {
	index := cfg.Universe.Index
	if indexFlag != "" {
		index = indexFlag
	}
	base, err := universe.Symbols(index)
	if err != nil {
		return nil, err
	}
	extra := cfg.Universe.Symbols
	if symbolFlag != "" {
		extra = append(extra, symbolFlag)
	}
	return universe.Merge(base, extra), nil
}

func marketTrend(col *collector.Collector, benchmark string, days int, log zerolog.Logger) model.TrendState {
	series, err := col.DailySeries(benchmark, days)
	if err != nil {
		log.Error().Err(err).Str("benchmark", benchmark).Msg("benchmark fetch failed")
		return strategy.MarketUnavailable(err)
	}
	return strategy.ClassifyMarket(series)
}

// runAnalyze prints the full picture for one symbol: dip signal, growth
// score, fundamentals, and the intraday prediction.
func runAnalyze(col *collector.Collector, scanCfg scanner.Config, symbol string, log zerolog.Logger) {
	series, fund, err := col.Snapshot(symbol, scanCfg.DailyBars)
	if err != nil {
		log.Fatal().Err(err).Str("symbol", symbol).Msg("fetch")
	}

	if signal, err := strategy.EvaluateDip(series); err != nil {
		log.Warn().Err(err).Msg("dip evaluation skipped")
	} else {
		fmt.Printf("Dip: %s (RSI %.1f, %+.1f%% vs SMA20, 200-day trend %s)\n",
			signal.Reason, signal.RSI, signal.PctBelowSMA20, signal.SMA200Trend)
	}

	if rep, err := strategy.ScoreCanslim(symbol, series, fund, scanCfg.Thresholds); err != nil {
		log.Warn().Err(err).Msg("growth scoring skipped")
	} else {
		fmt.Printf("CANSLIM: %d/6 (%s)\n", rep.Score, rep.Tier)
		for _, c := range rep.Checks {
			mark := "✗"
			if c.Passed {
				mark = "✓"
			}
			fmt.Printf("  %s %s: %s\n", mark, c.Name, c.Reason)
		}
	}

	if fund != nil {
		fmt.Print(report.FormatFundamentals(fund))
	}

	intraday, err := col.IntradaySeries(symbol)
	if err != nil {
		log.Warn().Err(err).Msg("intraday fetch failed, skipping prediction")
		return
	}
	tm, summary, err := ml.Train(intraday)
	if err != nil {
		log.Warn().Err(err).Msg("prediction skipped")
		return
	}
	pred := tm.Classify()
	fmt.Printf("Prediction: %s (confidence %.0f%%, model accuracy %.0f%% on %d held-out bars)\n",
		pred.Direction, pred.Confidence*100, summary.Accuracy*100, summary.TestRows)
}

func runDaemon(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, col *collector.Collector, sc *scanner.Scanner, symbols []string, log zerolog.Logger) {
	sched := scheduler.New(ctx, col, sc, cfg.DataSource.Benchmark, symbols, os.Stdout, log)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron, cfg.Schedule.IntradayCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing daily task now")
		go sched.RunDailyNow()
	}

	log.Info().Int("symbols", len(symbols)).Msg("daemon running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}
