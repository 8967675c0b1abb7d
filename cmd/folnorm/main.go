// Package main is the entry point for folnorm.
package main

import (
	"context"
	"os"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "folnorm.yaml"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folnorm",
	Short: "First-order logic clause normalizer",
	Long: `folnorm parses first-order logic clauses and rewrites them toward
conjunctive normal form: implication elimination, negation normal form,
skolemization, and distribution of disjunction over conjunction.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: ./"+defaultConfigFile+" or ~/.config/folnorm/"+defaultConfigFile+")")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
