package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/relnum/relio"
	"github.com/katalvlaran/relnum/reliability"
)

func writeTemp(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// TestRun_S1 drives main's run() directly (no subprocess) against a single
// edge: n=2, edge (1,2), source {1}, p=0.3.
func TestRun_S1(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "graph.txt", "2 1\n1 2\n")
	prob := writeTemp(t, dir, "prob.txt", "0.3\n")
	src := writeTemp(t, dir, "src.txt", "1\n")
	order := writeTemp(t, dir, "order.txt", "2 1\n1 2\n")

	stdoutFile, err := os.Create(filepath.Join(dir, "stdout.txt"))
	if err != nil {
		t.Fatal(err)
	}
	stderrFile, err := os.Create(filepath.Join(dir, "stderr.txt"))
	if err != nil {
		t.Fatal(err)
	}

	args := []string{"relcount", graph, prob, src, order}
	if err := run(args, stdoutFile, stderrFile); err != nil {
		t.Fatalf("run: %v", err)
	}
	stdoutFile.Close()
	stderrFile.Close()

	out, err := os.ReadFile(stdoutFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d stdout lines, want 3: %q", len(lines), string(out))
	}
	if !strings.HasPrefix(lines[0], "0: 0.000000000000000") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1: 0.700000000000000") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2: 0.300000000000000") {
		t.Errorf("line 2 = %q", lines[2])
	}

	errOut, err := os.ReadFile(stderrFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(errOut, []byte("calc time:")) {
		t.Errorf("stderr missing calc time line: %q", string(errOut))
	}
	if !bytes.Contains(errOut, []byte("#(states):")) {
		t.Errorf("stderr missing states line: %q", string(errOut))
	}
}

// TestRun_TooFewArgs covers the argument error path: run returns an error
// (main, not run, then prints the usage string to stderr).
func TestRun_TooFewArgs(t *testing.T) {
	if err := run([]string{"relcount", "only-one-arg"}, nil, nil); err == nil {
		t.Fatal("want error for too few arguments")
	}
}

// TestRun_MissingGraphFile checks that an unreadable input file surfaces as
// a reliability.InputError wrapping relio's own sentinel, not an ad-hoc
// fmt.Errorf string.
func TestRun_MissingGraphFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "no-such-graph.txt")
	args := []string{"relcount", missing, missing, missing, missing}

	err := run(args, nil, nil)
	if err == nil {
		t.Fatal("want error for missing graph file")
	}

	var inputErr reliability.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("err = %v (%T); want reliability.InputError", err, err)
	}
	if !errors.Is(err, relio.ErrFileUnreadable) {
		t.Fatalf("err = %v; want wrapped relio.ErrFileUnreadable", err)
	}
}
