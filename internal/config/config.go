package config

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"

	"github.com/vilya/Hailstones/internal/hailstone"
)

// Пределы для тюнинга, чтобы опечатка не раздула память или планировщик
const (
	MaxWorkers   = 256
	MaxTableSize = 1 << 28
)

type Config struct {
	// Диапазон стартовых значений (включительно)
	Lower int64
	Upper int64

	// Форма гистограммы
	MaxLength  int64
	BucketSize int64

	// Производительность
	Workers   int
	TableSize int

	// Отчетность
	Progress bool
	Stats    bool
	Verbose  bool
}

// Parse reads the flags followed by the four positional arguments
// <lower> <upper> <maxlength> <bucketsize>. An inverted range is not an
// error; it produces an all-zero histogram downstream. Use "--" before a
// negative lower bound so it is not taken for a flag.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("hailstones", flag.ExitOnError)
	var c Config

	fs.IntVar(&c.Workers, "workers", runtime.NumCPU(), "Parallel counting workers (default: number of CPUs)")
	fs.IntVar(&c.TableSize, "table", hailstone.DefaultTableSize, "Entries in the precomputed length table, 0 disables it (default: 1,048,576)")

	fs.BoolVar(&c.Progress, "progress", false, "Report counting progress on stderr once per second")
	fs.BoolVar(&c.Stats, "stats", false, "Append total and timing lines to the report")
	fs.BoolVar(&c.Verbose, "v", false, "Verbose logging on stderr")

	_ = fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 4 {
		return c, fmt.Errorf("expected 4 arguments <lower> <upper> <maxlength> <bucketsize>, got %d", len(rest))
	}

	var err error
	if c.Lower, err = strconv.ParseInt(rest[0], 10, 64); err != nil {
		return c, fmt.Errorf("lower bound %q is not an integer", rest[0])
	}
	if c.Upper, err = strconv.ParseInt(rest[1], 10, 64); err != nil {
		return c, fmt.Errorf("upper bound %q is not an integer", rest[1])
	}
	if c.MaxLength, err = strconv.ParseInt(rest[2], 10, 64); err != nil {
		return c, fmt.Errorf("maxlength %q is not an integer", rest[2])
	}
	if c.BucketSize, err = strconv.ParseInt(rest[3], 10, 64); err != nil {
		return c, fmt.Errorf("bucketsize %q is not an integer", rest[3])
	}

	if c.Workers < 1 {
		c.Workers = 1
	}

	return c, validateConfig(c)
}

func validateConfig(cfg Config) error {
	if cfg.MaxLength < 1 {
		return fmt.Errorf("maxlength must be at least 1, got %d", cfg.MaxLength)
	}
	if cfg.BucketSize < 1 {
		return fmt.Errorf("bucketsize must be at least 1, got %d", cfg.BucketSize)
	}

	// Валидируем воркеры
	if cfg.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, cfg.Workers)
	}

	// Валидируем размер таблицы
	if cfg.TableSize < 0 || cfg.TableSize > MaxTableSize {
		return fmt.Errorf("table must be between 0 and %d, got %d", MaxTableSize, cfg.TableSize)
	}

	return nil
}
