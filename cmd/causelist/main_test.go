package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const listJSON = `{
  "pages": [
    {
      "width": 612,
      "height": 792,
      "blocks": [
        {
          "type": "text",
          "bbox": {"x": 40, "y": 40, "w": 520, "h": 30},
          "lines": [
            {"bbox": {"x": 40, "y": 40, "w": 520, "h": 14}, "text": "SUPREME COURT OF INDIA"},
            {"bbox": {"x": 40, "y": 56, "w": 200, "h": 14}, "text": "COURT NO. 2"}
          ]
        },
        {
          "type": "text",
          "bbox": {"x": 430, "y": 80, "w": 80, "h": 12},
          "lines": [
            {"bbox": {"x": 430, "y": 80, "w": 80, "h": 12}, "text": "Advocate"}
          ]
        },
        {
          "type": "text",
          "bbox": {"x": 40, "y": 120, "w": 360, "h": 56},
          "lines": [
            {"bbox": {"x": 40, "y": 120, "w": 200, "h": 14}, "text": "15 SLP(C) No. 101/2024"},
            {"bbox": {"x": 40, "y": 134, "w": 200, "h": 14}, "text": "ALPHA TRADERS"},
            {"bbox": {"x": 40, "y": 148, "w": 80, "h": 14}, "text": "versus"},
            {"bbox": {"x": 40, "y": 162, "w": 200, "h": 14}, "text": "STATE OF U.P."}
          ]
        }
      ]
    }
  ]
}`

func writeList(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(path, []byte(listJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	out, err := runCommand(t, dumpCmd(), writeList(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "2/15 - Alpha Traders Vs State of U.P\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestLookupHit(t *testing.T) {
	out, err := runCommand(t, lookupCmd(), writeList(t), "--refs", "2/15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2/15 - Alpha Traders Vs State of U.P") {
		t.Errorf("expected the entry in output, got %q", out)
	}
}

// A reference that matches nothing is answered with a NOT FOUND line; it is
// not an error, even when every reference misses.
func TestLookupMissIsNotAnError(t *testing.T) {
	out, err := runCommand(t, lookupCmd(), writeList(t), "--refs", "9/99")
	if err != nil {
		t.Fatalf("expected success for a lookup miss, got error: %v", err)
	}

	want := "9/99 - NOT FOUND\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestLookupMixedHitsAndMisses(t *testing.T) {
	out, err := runCommand(t, lookupCmd(), writeList(t), "--refs", "2/15,9/99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "2/15 - Alpha Traders Vs State of U.P\n9/99 - NOT FOUND\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestLookupRefsFile(t *testing.T) {
	refsPath := filepath.Join(t.TempDir(), "refs.txt")
	if err := os.WriteFile(refsPath, []byte("2/15\n9/99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, lookupCmd(), writeList(t), "--refs-file", refsPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2/15 - Alpha Traders Vs State of U.P") ||
		!strings.Contains(out, "9/99 - NOT FOUND") {
		t.Errorf("unexpected output %q", out)
	}
}

// Giving no references at all is the one usage error.
func TestLookupNoRefs(t *testing.T) {
	if _, err := runCommand(t, lookupCmd(), writeList(t)); err == nil {
		t.Error("expected an error when no references are given")
	}
}
