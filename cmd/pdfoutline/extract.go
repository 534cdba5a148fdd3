package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgallion1/pdfoutline/internal/batch"
	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	var in string
	var out string
	var workers int
	var includeEmpty bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract outlines from every document in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			cfg := config.Load()

			if in == "" {
				in = cfg.InputDir
			}
			if out == "" {
				out = cfg.OutputDir
			}
			if workers <= 0 {
				workers = cfg.WorkerCount
			}

			ex := outline.NewExtractor(log)
			stats := batch.NewExtractStats(time.Hour)

			r := batch.NewRunner(ex, stats, log)
			r.Workers = workers
			r.SkipEmpty = cfg.SkipEmptyOutlines && !includeEmpty

			sum, err := r.Run(cmd.Context(), in, out)
			if err != nil {
				return err
			}
			if sum.Found == 0 {
				return fmt.Errorf("no supported files found in %s", in)
			}
			if sum.Failed > 0 {
				return fmt.Errorf("%d of %d files failed", sum.Failed, sum.Found)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "input directory (default: INPUT_DIR or ./input)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for JSON sidecars (default: OUTPUT_DIR or ./output)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of documents to process in parallel")
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "write sidecars even when no headings were found")
	return cmd
}
