package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folnorm/folnorm/internal/di"
	"github.com/folnorm/folnorm/internal/precommit"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Hook declaration file commands",
}

var hooksLintCmd = &cobra.Command{
	Use:   "lint [path]",
	Short: "Validate a .pre-commit-config.yaml",
	Long: `Check a pre-commit hook declaration file for schema validity: every repo
entry must name its source and (for remote repos) a revision pin, every
hook must carry an id, and local hooks must be fully declared.

Without an argument the path comes from the hooks.config_path config key,
falling back to ./.pre-commit-config.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHooksLint,
}

func init() {
	hooksCmd.AddCommand(hooksLintCmd)
	rootCmd.AddCommand(hooksCmd)
}

func runHooksLint(_ *cobra.Command, args []string) error {
	container, err := setupContainer()
	if err != nil {
		return err
	}
	defer shutdownContainer(container)

	path := di.MustInvoke[*di.ConfigService](container).Config.Hooks.GetEffectivePath()
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := precommit.Load(path)
	if err != nil {
		fmt.Printf("✗ %s\n", err)
		return err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("✗ %s\n", err)
		return err
	}

	fmt.Printf("✓ %s is valid\n", path)
	return nil
}
