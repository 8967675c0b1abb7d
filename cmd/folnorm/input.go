package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/folnorm/folnorm/internal/fol"
	"github.com/folnorm/folnorm/internal/parser"
)

// openInput returns the clause source for a command: the file named in
// args, or stdin when no argument (or "-") is given.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, "stdin", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open clause file: %w", err)
	}
	return f, args[0], nil
}

// readClauses parses one clause per non-blank line. Lines starting
// with '#' are comments.
func readClauses(r io.Reader) ([]fol.Clause, error) {
	scanner := bufio.NewScanner(r)

	var clauses []fol.Clause
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		clause, err := parser.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		clauses = append(clauses, clause)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clauses: %w", err)
	}
	return clauses, nil
}
