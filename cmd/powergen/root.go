package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/powergraph/powergraph/assemble"
	"github.com/powergraph/powergraph/dot"
	"github.com/powergraph/powergraph/generate"
	"github.com/powergraph/powergraph/library"
)

type flags struct {
	count       int
	seed        int64
	maxLive     int
	maxAttempts int
	libraryPath string
	dotDir      string
	verbose     bool
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "powergen",
		Short:         "Synthesize unique ability graphs from a typed node library",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.count, "count", "n", 10, "number of unique graphs to generate")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed (0 = fixed default stream)")
	cmd.Flags().IntVar(&f.maxLive, "budget", 0, "cap on live values during search (0 = default)")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", 0, "attempt ceiling (0 = 100 per graph)")
	cmd.Flags().StringVar(&f.libraryPath, "library", "", "YAML node-library file (default: built-in library)")
	cmd.Flags().StringVar(&f.dotDir, "dot-dir", "", "write one Graphviz DOT file per graph into this directory")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	reg, err := loadRegistry(f.libraryPath)
	if err != nil {
		return err
	}
	logger.Debug("library loaded", "descriptors", reg.Len())

	opts := []generate.Option{
		generate.WithContext(cmd.Context()),
		generate.WithSeed(f.seed),
	}
	if f.maxLive > 0 {
		opts = append(opts, generate.WithMaxLive(f.maxLive))
	}
	if f.maxAttempts > 0 {
		opts = append(opts, generate.WithMaxAttempts(f.maxAttempts))
	}

	graphs, err := generate.Unique(reg, f.count, opts...)
	if err != nil {
		// Partial results are still worth reporting before failing.
		logger.Error("generation incomplete", "produced", len(graphs), "requested", f.count, "err", err)
		return err
	}

	for i, g := range graphs {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. [%s] %s\n", i+1, g.ID, g.Description(library.TypeGameEffect))

		if f.dotDir == "" {
			continue
		}
		path := filepath.Join(f.dotDir, fmt.Sprintf("power%d.dot", i))
		if err := writeDot(path, g); err != nil {
			return err
		}
		logger.Debug("wrote graph", "path", path)
	}

	return nil
}

func loadRegistry(path string) (*library.Registry, error) {
	if path == "" {
		return library.StandardRegistry(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	defer file.Close()

	return library.LoadYAML(file)
}

func writeDot(path string, g *assemble.Graph) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := dot.Write(file, g); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}

	return file.Close()
}
