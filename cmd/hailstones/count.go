package main

import (
	"context"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/atomic"

	"github.com/vilya/Hailstones/internal/config"
	"github.com/vilya/Hailstones/internal/counter"
	"github.com/vilya/Hailstones/internal/hailstone"
	"github.com/vilya/Hailstones/internal/progress"
	"github.com/vilya/Hailstones/internal/ranger"
	"github.com/vilya/Hailstones/internal/report"
	"github.com/vilya/Hailstones/internal/util"
)

func count(args []string) {
	cfg, err := config.Parse(args) // флаги → конфиг
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Printf("[FATAL] %v", err)
		printUsage()
		os.Exit(2)
	}

	// контекст с отменой по сигналу
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 2)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sig; cancel() }()

	start := time.Now()

	// таблица предвычисленных длин
	table := hailstone.BuildTable(cfg.TableSize, cfg.Workers)
	if cfg.Verbose && table.Size() > 0 {
		log.Printf("[INFO] length table: %s entries (built in %s)",
			util.FormatNumber(uint64(table.Size())), time.Since(start).Truncate(time.Millisecond))
	}

	// шардируем диапазон
	shards := ranger.Split(cfg.Lower, cfg.Upper, cfg.Workers)
	if cfg.Verbose {
		if len(shards) == 0 {
			log.Println("[INFO] Empty range.")
		} else {
			log.Printf("[INFO] range: [%d..%d], shards: %d, workers: %d",
				cfg.Lower, cfg.Upper, len(shards), cfg.Workers)
		}
	}

	// метрики счета
	done := atomic.NewUint64(0)

	// прогресс
	var prog *progress.Reporter
	if cfg.Progress {
		prog = progress.New(totalStarts(cfg.Lower, cfg.Upper), done, start)
		prog.Start(ctx)
	}

	// считаем
	hist, err := counter.Run(ctx, shards, cfg.MaxLength, cfg.BucketSize, table, done)
	if err != nil {
		cancel()
		log.Fatalf("[FATAL] count: %v", err)
	}
	elapsed := time.Since(start)

	// корректно завершим прогресс
	cancel()
	if prog != nil {
		prog.WaitAndFinish()
	}

	// отчет
	if err := report.Render(os.Stdout, cfg.Lower, cfg.Upper, hist); err != nil {
		log.Fatalf("[FATAL] report: %v", err)
	}
	if cfg.Stats {
		if err := report.RenderStats(os.Stdout, hist, elapsed); err != nil {
			log.Fatalf("[FATAL] report: %v", err)
		}
	}

	if cfg.Verbose {
		printFinalStat(elapsed, hist.Total())
	}
}

func totalStarts(lower, upper int64) uint64 {
	if upper < lower {
		return 0
	}
	return uint64(upper) - uint64(lower) + 1
}

func printFinalStat(elapsed time.Duration, starts uint64) {
	sps := float64(starts) / math.Max(elapsed.Seconds(), 0.0001)

	log.Println("------------------------------------------------------------")
	log.Printf("[STATS] starts: %s\n", util.FormatNumber(starts))
	log.Printf("[STATS] elapsed: %s\n", elapsed.Truncate(time.Millisecond))
	log.Printf("[STATS] speed: %.0f starts/s\n", sps)
	log.Println("------------------------------------------------------------")
}
