package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadClauses(t *testing.T) {
	input := strings.NewReader(`# socrates
(for_all (X) (man(X) -> mortal(X)))
man(socrates)

# blank lines and comments are skipped
(p and q)
`)

	clauses, err := readClauses(input)
	if err != nil {
		t.Fatalf("readClauses: %v", err)
	}

	if len(clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(clauses))
	}
	if got := clauses[1].String(); got != "man(socrates)" {
		t.Errorf("clause 1 = %q", got)
	}
}

func TestReadClauses_Empty(t *testing.T) {
	clauses, err := readClauses(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("readClauses: %v", err)
	}
	if len(clauses) != 0 {
		t.Errorf("expected no clauses, got %d", len(clauses))
	}
}

func TestReadClauses_BadLineReportsNumber(t *testing.T) {
	input := strings.NewReader("man(socrates)\n(p and\n")

	_, err := readClauses(input)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name line 2, got: %v", err)
	}
}

func TestOpenInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clauses.txt")
	if err := os.WriteFile(path, []byte("p(X)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, name, err := openInput([]string{path})
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer r.Close()

	if name != path {
		t.Errorf("name = %q, want %q", name, path)
	}
}

func TestOpenInput_Stdin(t *testing.T) {
	r, name, err := openInput(nil)
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	if name != "stdin" {
		t.Errorf("name = %q, want stdin", name)
	}
	if r != os.Stdin {
		t.Error("expected stdin reader")
	}
}

func TestOpenInput_Dash(t *testing.T) {
	r, name, err := openInput([]string{"-"})
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	if name != "stdin" || r != os.Stdin {
		t.Errorf("expected stdin, got %q", name)
	}
}

func TestOpenInput_Missing(t *testing.T) {
	_, _, err := openInput([]string{filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Error("expected error for missing file")
	}
}
