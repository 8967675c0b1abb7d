package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/folnorm/folnorm/internal/fol"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check clauses for clausal form",
	Long: `Read clauses from a file or stdin and report, for each, whether every
conjunct is a pure disjunction of literals, along with the predicates it
mentions. With --strict the command fails if any clause is not in
clausal form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false,
		"exit non-zero when a clause is not in clausal form")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	container, err := setupContainer()
	if err != nil {
		return err
	}
	defer shutdownContainer(container)

	in, _, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	clauses, err := readClauses(in)
	if err != nil {
		return err
	}

	violations := 0
	for _, clause := range clauses {
		conjuncts := fol.Conjuncts(clause)
		clausal := lo.EveryBy(conjuncts, fol.IsLiteralDisjunction)

		names := lo.Uniq(lo.Map(fol.ExtractPredicates(clause),
			func(p *fol.Predicate, _ int) string { return p.Name }))

		status := "clausal"
		if !clausal {
			status = "not clausal"
			violations++
		}
		fmt.Printf("%-11s  %s  [predicates: %s]\n", status, clause, strings.Join(names, ", "))
	}

	if checkStrict && violations > 0 {
		return fmt.Errorf("%d clause(s) not in clausal form", violations)
	}
	return nil
}
