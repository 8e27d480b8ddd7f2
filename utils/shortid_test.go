package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestNewShortIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewShortID()
		if len(id) != ShortIDLength {
			t.Fatalf("expected %d characters, got %q", ShortIDLength, id)
		}
		for _, c := range id {
			if !strings.ContainsRune(shortIDAlphabet, c) {
				t.Fatalf("unexpected character %q in %q", c, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

// IDs are primary keys, so a process restart must never replay the same
// sequence. The test re-runs itself as a child process twice and compares
// the first id each one generates.
func TestNewShortIDDiffersAcrossProcesses(t *testing.T) {
	if os.Getenv("SHORTID_CHILD") == "1" {
		fmt.Print(NewShortID())
		os.Exit(0)
	}
	firstID := func() string {
		cmd := exec.Command(os.Args[0], "-test.run=TestNewShortIDDiffersAcrossProcesses")
		cmd.Env = append(os.Environ(), "SHORTID_CHILD=1")
		out, err := cmd.Output()
		if err != nil {
			t.Fatalf("child process: %v", err)
		}
		return string(out)
	}
	if a, b := firstID(), firstID(); a == b {
		t.Fatalf("two fresh processes generated the same first id %q", a)
	}
}
