package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/extract"
)

var (
	outputDir string
	fromPDF   bool
)

var runCmd = &cobra.Command{
	Use:   "run [input-dir-or-files...]",
	Short: "Classify documents and write their outlines as JSON",
	Long: `Run classifies each input document and writes one <name>.json result per
input into the output directory. Inputs are fragment interchange JSON files,
or PDFs when --pdf is given. A directory argument is expanded to every
matching file it contains.

A document that fails extraction is skipped with a warning; the rest of the
batch still completes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for result JSON files")
	runCmd.Flags().BoolVar(&fromPDF, "pdf", false, "read inputs as PDF files instead of interchange JSON")
	runCmd.Flags().Int("workers", 4, "number of documents classified concurrently")
	viper.BindPFlag("workers", runCmd.Flags().Lookup("workers"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input documents found")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	items := make([]outliner.BatchItem, 0, len(paths))
	for _, path := range paths {
		var src extract.Source
		if fromPDF {
			src = extract.NewPDF(path)
		} else {
			src = extract.NewJSONFile(path)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		items = append(items, outliner.BatchItem{Name: name, Source: src})
	}

	batch := outliner.NewBatch(viper.GetInt("workers")).
		WithConfig(pipelineConfig()).
		WithLogger(slog.Default())
	results := batch.Run(cmd.Context(), items)

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			continue
		}
		if err := writeResult(r); err != nil {
			return err
		}
	}
	slog.Info("run complete", "documents", len(results), "failed", failures)
	if failures == len(results) {
		return fmt.Errorf("all %d documents failed", failures)
	}
	return nil
}

// collectInputs expands directory arguments into their contained documents
func collectInputs(args []string) ([]string, error) {
	ext := ".json"
	if fromPDF {
		ext = ".pdf"
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
				continue
			}
			paths = append(paths, filepath.Join(arg, entry.Name()))
		}
	}
	return paths, nil
}

func writeResult(r outliner.BatchResult) error {
	data, err := json.MarshalIndent(r.Result, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(outputDir, r.Name+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
