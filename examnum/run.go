package examnum

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AndrewConway/make-exam-numbers/examnum/database"
)

// Runner drives the generator through a sequence of batches and persists the
// results: a prefix_<P>.txt file per batch, optional QR images and an optional
// database record per issued code.
type Runner struct {
	Cfg       Config
	Generator *Generator
	DB        *database.Database
}

// BatchResult summarizes one completed batch.
type BatchResult struct {
	Batch Batch
	Codes []string
}

// Run processes batches in order. Codes issued in earlier batches count as
// used for later ones, including across prefixes.
func (r *Runner) Run(ctx context.Context, batches []Batch) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(batches))
	for _, batch := range batches {
		result, err := r.runBatch(ctx, batch)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) runBatch(ctx context.Context, batch Batch) (BatchResult, error) {
	slog.InfoContext(ctx, "Processing prefix",
		slog.String("prefix", batch.Prefix),
		slog.Int("count", batch.Count),
	)

	path := filepath.Join(r.Cfg.Output.Dir, fmt.Sprintf("prefix_%s.txt", batch.Prefix))
	file, err := os.Create(path)
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	w := bufio.NewWriter(file)

	codes := make([]string, 0, batch.Count)
	for i := 0; i < batch.Count; i++ {
		code, err := r.Generator.NewCode(batch.Prefix, r.Cfg.Generator.MinDistance)
		if err != nil {
			return BatchResult{}, fmt.Errorf("failed to generate code %d of %d for prefix %q: %w", i+1, batch.Count, batch.Prefix, err)
		}
		if _, err = fmt.Fprintln(w, code); err != nil {
			return BatchResult{}, fmt.Errorf("failed to write code: %w", err)
		}
		if r.Cfg.Output.QR {
			if err = WriteQRCode(filepath.Join(r.Cfg.Output.Dir, code+".png"), code); err != nil {
				return BatchResult{}, err
			}
		}
		codes = append(codes, code)
		slog.InfoContext(ctx, "Found code",
			slog.Int("found", i+1),
			slog.Int("wanted", batch.Count),
			slog.String("prefix", batch.Prefix),
		)
	}

	if err = w.Flush(); err != nil {
		return BatchResult{}, fmt.Errorf("failed to flush output file: %w", err)
	}

	if r.DB != nil {
		if err = r.DB.InsertCodes(ctx, batch.Prefix, codes); err != nil {
			return BatchResult{}, err
		}
	}

	return BatchResult{
		Batch: batch,
		Codes: codes,
	}, nil
}
