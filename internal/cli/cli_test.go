package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/errors"
	"github.com/lgbarn/fengate/internal/notation"
	"github.com/lgbarn/fengate/internal/output"
	"github.com/lgbarn/fengate/internal/testutil"
)

// run executes the command tree with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := Root(config.NewConfig())
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode")
	if err != nil {
		t.Fatalf("decode = %v", err)
	}
	testutil.AssertContains(t, out, "8 r n b q k b n r")
	testutil.AssertContains(t, out, "1 R N B Q K B N R")
	testutil.AssertContains(t, out, "snapshot: "+strings.Repeat("1", 16)+strings.Repeat("0", 32)+strings.Repeat("2", 16))
}

func TestDecodeCommandJSON(t *testing.T) {
	out, err := run(t, "decode", "--json", "8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("decode --json = %v", err)
	}

	var jb output.JSONBoard
	if err := json.Unmarshal([]byte(out), &jb); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(jb.Pieces) != 1 || jb.Pieces[0].Square != "e1" || jb.Pieces[0].Kind != "King" {
		t.Errorf("Pieces = %+v", jb.Pieces)
	}
	testutil.AssertEqual(t, jb.ActiveColor, "w")
}

func TestDecodeCommandMalformed(t *testing.T) {
	out, err := run(t, "decode", "--no-coords", "8/8/8")
	if err != nil {
		t.Fatalf("decode = %v", err)
	}
	if strings.Contains(out, "a b c") {
		t.Error("--no-coords still printed coordinates")
	}
	testutil.AssertContains(t, out, "snapshot: "+testutil.EmptySnapshot)
}

func TestRestoreCommand(t *testing.T) {
	snap := "1" + strings.Repeat("0", 62) + "2"
	out, err := run(t, "restore", snap)
	if err != nil {
		t.Fatalf("restore = %v", err)
	}
	testutil.AssertContains(t, out, "8 . . . . . . . p")
	testutil.AssertContains(t, out, "1 P . . . . . . .")
	testutil.AssertContains(t, out, "snapshot: "+snap)

	if _, err := run(t, "restore"); err == nil {
		t.Error("restore without a snapshot should fail")
	}
}

func TestGateCommand(t *testing.T) {
	tests := []struct {
		square string
		player string
		want   string
	}{
		{"e2", "0", "true"},
		{"e2", "1", "false"},
		{"e7", "1", "true"},
		{"e4", "0", "false"},
		{"e7", "2", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.square+"/"+tt.player, func(t *testing.T) {
			out, err := run(t, "gate", notation.InitialFEN, tt.square, tt.player)
			if err != nil {
				t.Fatalf("gate = %v", err)
			}
			testutil.AssertEqual(t, strings.TrimSpace(out), tt.want)
		})
	}
}

func TestGateCommandErrors(t *testing.T) {
	if _, err := run(t, "gate", notation.InitialFEN, "i9", "0"); !errors.Is(err, errors.ErrOutOfBounds) {
		t.Errorf("gate with bad square = %v; want ErrOutOfBounds", err)
	}
	if _, err := run(t, "gate", notation.InitialFEN, "e2", "white"); err == nil {
		t.Error("gate with non-numeric player should fail")
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", notation.InitialFEN)
	if err != nil {
		t.Fatalf("validate = %v", err)
	}
	testutil.AssertEqual(t, strings.TrimSpace(out), "ok")

	out, err = run(t, "validate", "8/8/8/8/8/8/8/7X")
	if !errors.Is(err, errors.ErrInvalidFEN) {
		t.Fatalf("validate = %v; want ErrInvalidFEN", err)
	}
	testutil.AssertContains(t, out, "segment 8")

	if _, err := run(t, "validate", "8/8/8/8/8/8/8/8"); err != nil {
		t.Errorf("validate empty board = %v", err)
	}
}

func TestValidateCommandStrict(t *testing.T) {
	if _, err := run(t, "validate", "--strict", notation.InitialPlacement); err != nil {
		t.Errorf("validate --strict initial = %v", err)
	}

	// File-letter castling rights pass the lenient check only.
	const shredder = "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9"
	if _, err := run(t, "validate", shredder); err != nil {
		t.Errorf("validate = %v", err)
	}
	if _, err := run(t, "validate", "--strict", shredder); !errors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("validate --strict = %v; want ErrInvalidFEN", err)
	}
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	content := strings.Join([]string{
		"# opening",
		notation.InitialFEN,
		"",
		"8/8/8",
		"8/8/8/8/8/8/8/4K3",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "batch", "--workers", "3", path)
	if !errors.Is(err, errors.ErrInvalidFEN) {
		t.Fatalf("batch = %v; want ErrInvalidFEN for the short record", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("batch printed %d lines; want 3:\n%s", len(lines), out)
	}
	wantPrefixes := []string{"2\t", "4\t", "5\t"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q; want prefix %q", i, lines[i], prefix)
		}
	}
	testutil.AssertContains(t, lines[0], "\t32\tok")
	testutil.AssertContains(t, lines[1], testutil.EmptySnapshot+"\t0\t1 problem(s)")
	testutil.AssertContains(t, lines[2], "\t1\tok")
}

func TestBatchCommandMissingFile(t *testing.T) {
	if _, err := run(t, "batch", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("batch with a missing file should fail")
	}
}

func TestLogLevelFlag(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	if _, err := run(t, "--log-level", "debug", "decode"); err != nil {
		t.Fatal(err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v; want debug", logrus.GetLevel())
	}

	if _, err := run(t, "--log-level", "debug", "--trace", "decode"); err != nil {
		t.Fatal(err)
	}
	if logrus.GetLevel() != logrus.TraceLevel {
		t.Errorf("level = %v; want trace", logrus.GetLevel())
	}

	if _, err := run(t, "--log-level", "loud", "decode"); err == nil {
		t.Error("unknown log level should fail")
	}
}

func TestBatchCommandDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	content := strings.Join([]string{
		notation.InitialFEN,
		"8/8/8/8/8/8/8/4K3",
		notation.InitialPlacement + " b - - 3 12",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "batch", "--duplicates", path)
	if err != nil {
		t.Fatalf("batch = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("batch printed %d lines; want 3:\n%s", len(lines), out)
	}
	if strings.Contains(lines[0], "duplicate") || strings.Contains(lines[1], "duplicate") {
		t.Errorf("first occurrences marked as duplicates:\n%s", out)
	}
	if !strings.HasSuffix(lines[2], "\tok\tduplicate of 1") {
		t.Errorf("line 3 = %q; want duplicate of 1", lines[2])
	}
}

func TestBatchCommandLogsSummary(t *testing.T) {
	hook := test.NewLocal(logrus.StandardLogger())
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	path := filepath.Join(t.TempDir(), "positions.txt")
	content := strings.Join([]string{
		"8/8/8/8/8/8/8/4K3",
		"8/8/8/8/8/8/8/4K3 b",
		"8/8/8/8/8/8/8/4K3 w - - 0 9",
		"8/8/8/8/8/8/8/4k3",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "batch", "--workers", "2", path); err != nil {
		t.Fatalf("batch = %v", err)
	}

	var summary *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "batch finished" {
			summary = e
		}
	}
	if summary == nil {
		t.Fatal("no batch finished log entry")
	}
	want := logrus.Fields{"lines": 4, "invalid": 0, "unique": 2, "duplicates": 2, "workers": 2}
	testutil.AssertEqual(t, summary.Data, want)
}
