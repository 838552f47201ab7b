package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/AndrewConway/make-exam-numbers/examnum"
	"github.com/AndrewConway/make-exam-numbers/examnum/database"
	"github.com/AndrewConway/make-exam-numbers/internal/xrand"
)

func main() {
	var existing multiFlag
	cfgPath := flag.String("config", "", "path to a TOML config file")
	seed := flag.Uint64("seed", 0, "random seed (64 bit unsigned integer) for a reproducible list; omit for an entropy seeded run")
	digits := flag.Int("digits", 0, "the number of digits in each code")
	minDistance := flag.Int("min-distance", -1, "the minimum number of characters any code must differ from any other code")
	maxAttempts := flag.Int("max-attempts", 0, "give up on a code after this many rejected candidates (0 = keep trying forever)")
	outDir := flag.String("out", "", "directory to write the prefix_<P>.txt files to")
	qr := flag.Bool("qr", false, "additionally write a <code>.png QR image per code")
	flag.Var(&existing, "existing", "file of existing codes to avoid, one per line (repeatable)")
	flag.Usage = usage
	flag.Parse()

	cfg, err := examnum.LoadConfig(*cfgPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Generator.Seed = seed
		case "digits":
			cfg.Generator.Digits = *digits
		case "min-distance":
			cfg.Generator.MinDistance = *minDistance
		case "max-attempts":
			cfg.Generator.MaxAttempts = *maxAttempts
		case "out":
			cfg.Output.Dir = *outDir
		case "qr":
			cfg.Output.QR = *qr
		}
	})

	setupLogger(cfg.Log)

	if err = cfg.Validate(); err != nil {
		slog.Error("Invalid config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	batches, err := examnum.ParseBatches(flag.Args())
	if err != nil {
		slog.Error("Invalid batch argument", slog.String("err", err.Error()))
		os.Exit(1)
	}

	slog.Info("Starting make-exam-numbers", slog.String("config", cfg.String()))

	if err = run(context.Background(), cfg, existing, batches); err != nil {
		slog.Error("Run failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg examnum.Config, existing []string, batches []examnum.Batch) error {
	var source xrand.Source
	if cfg.Generator.Seed != nil {
		source = xrand.NewSeeded(*cfg.Generator.Seed)
	} else {
		source = xrand.New()
	}

	gen, err := examnum.NewGenerator(source, cfg.Generator.Digits, cfg.Generator.MaxAttempts)
	if err != nil {
		return err
	}

	for _, path := range existing {
		codes, err := examnum.ReadCodes(path)
		if err != nil {
			return err
		}
		gen.AddUsed(codes...)
		slog.Info("Read existing codes", slog.String("path", path), slog.Int("count", len(codes)))
	}

	var db *database.Database
	if cfg.Database.Enabled {
		if db, err = database.New(ctx, cfg.Database); err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		codes, err := db.GetAllCodes(ctx)
		if err != nil {
			return err
		}
		gen.AddUsed(codes...)
		slog.Info("Loaded issued codes from database", slog.Int("count", len(codes)))
	}

	runner := &examnum.Runner{
		Cfg:       cfg,
		Generator: gen,
		DB:        db,
	}

	start := time.Now()
	results, err := runner.Run(ctx, batches)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err = examnum.NotifyComplete(ctx, cfg.Notifications, results, gen.Rejections(), elapsed); err != nil {
		slog.Error("Failed to send completion notification", slog.String("err", err.Error()))
	}

	slog.Info("All finished",
		slog.Int("batches", len(results)),
		slog.Uint64("rejections", gen.Rejections()),
		slog.Duration("took", elapsed),
	)
	return nil
}

func setupLogger(cfg examnum.LogConfig) {
	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     cfg.Level,
	}

	var handler slog.Handler
	switch cfg.Format {
	case examnum.LogFormatJSON:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] <batch>...

Produces a set of randomish exam numbers such that no two exam numbers are
very similar: the number of characters that differ between any pair of codes
(the Hamming distance) is at least the configured minimum.

Each batch is either a bare number ("500": 500 codes with no prefix) or of the
form "AB3:78" (78 codes with the prefix "AB3"). Each batch is written to
prefix_<P>.txt in the output directory.

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}
