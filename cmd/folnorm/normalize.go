package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/folnorm/folnorm/internal/config"
	"github.com/folnorm/folnorm/internal/di"
	"github.com/folnorm/folnorm/internal/pipeline"
)

var (
	normalizeSteps  []string
	normalizeFormat string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Rewrite clauses toward conjunctive normal form",
	Long: `Read first-order logic clauses (one per line, '#' for comments) from a
file or stdin, run the rewrite pipeline over each, and print the results.

The default pipeline is eliminate_implications, move_negation, skolemize,
distribute_or; --steps or the normalize.steps config key select a subset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringSliceVar(&normalizeSteps, "steps", nil,
		"rewrite steps to run, in order (default: full pipeline)")
	normalizeCmd.Flags().StringVar(&normalizeFormat, "format", "",
		"output format: text or json (default: text)")
	rootCmd.AddCommand(normalizeCmd)
}

type normalizeResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func runNormalize(_ *cobra.Command, args []string) error {
	container, err := setupContainer()
	if err != nil {
		return err
	}
	defer shutdownContainer(container)

	cfgSvc := di.MustInvoke[*di.ConfigService](container)

	// --steps overrides the configured pipeline
	pipe := di.MustInvoke[*di.PipelineService](container).Pipeline
	if len(normalizeSteps) > 0 {
		if pipe, err = pipeline.New(normalizeSteps); err != nil {
			return err
		}
	}

	format := normalizeFormat
	if format == "" {
		format = cfgSvc.Config.Normalize.GetEffectiveFormat()
	}

	in, source, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	clauses, err := readClauses(in)
	if err != nil {
		return err
	}

	log.Debug().
		Str("source", source).
		Int("clauses", len(clauses)).
		Strs("steps", pipe.Steps()).
		Msg("normalizing clauses")

	results := make([]normalizeResult, 0, len(clauses))
	for _, clause := range clauses {
		normalized, err := pipe.Run(clause)
		if err != nil {
			return err
		}
		results = append(results, normalizeResult{
			Input:  clause.String(),
			Output: normalized.String(),
		})
	}

	return writeResults(results, format)
}

func writeResults(results []normalizeResult, format string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Println(r.Output)
	}
	return nil
}
