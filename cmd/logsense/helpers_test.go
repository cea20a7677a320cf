package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputFromArgs(t *testing.T) {
	got, err := readInput([]string{"panic:", "runtime", "error"}, "")
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if got != "panic: runtime error" {
		t.Errorf("got %q", got)
	}
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("Exception: NullPointerException at line 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readInput(nil, path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if !strings.Contains(got, "NullPointerException") {
		t.Errorf("got %q", got)
	}
}

func TestReadInputMissing(t *testing.T) {
	if _, err := readInput(nil, ""); err == nil {
		t.Error("expected error for empty input")
	}

	if _, err := readInput(nil, filepath.Join(t.TempDir(), "absent.log")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRootCommandConfigFlag(t *testing.T) {
	root := newRootCommand()

	f := root.PersistentFlags().Lookup("config")
	if f == nil {
		t.Fatal("--config persistent flag not registered")
	}
	if f.Shorthand != "c" {
		t.Errorf("shorthand = %q, want %q", f.Shorthand, "c")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"classify", "analyze"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
