package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/fengate/internal/chess"
	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/notation"
	"github.com/lgbarn/fengate/internal/testutil"
)

func decoded(text string) (*chess.Board, notation.Record) {
	b := chess.NewBoard()
	rec := notation.NewCodec(nil).Decode(b, text)
	return b, rec
}

func TestDiagram(t *testing.T) {
	b, _ := decoded(notation.InitialPlacement)

	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, Diagram(b, true), want)

	plain := Diagram(b, false)
	if strings.Contains(plain, "a b c") {
		t.Error("Diagram(false) contains coordinates")
	}
	if !strings.HasPrefix(plain, "r n b q k b n r\n") {
		t.Errorf("Diagram(false) = %q", plain)
	}
}

func TestDiagramWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.Writer = &buf

	b, rec := decoded("8/8/8/8/8/8/8/4K3")
	if err := NewWriter(cfg).WriteBoard(b, rec); err != nil {
		t.Fatalf("WriteBoard() = %v", err)
	}

	out := buf.String()
	testutil.AssertContains(t, out, "1 . . . . K . . .")
	testutil.AssertContains(t, out, "snapshot: 00001000")

	buf.Reset()
	cfg.ShowSnapshot = false
	if err := NewWriter(cfg).WriteBoard(b, rec); err != nil {
		t.Fatalf("WriteBoard() = %v", err)
	}
	if strings.Contains(buf.String(), "snapshot") {
		t.Error("snapshot written with ShowSnapshot disabled")
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.Writer = &buf
	cfg.Format = config.JSON

	b, rec := decoded("8/8/8/8/8/8/8/k6Q b - - 0 1")
	b.PieceAt(0, 0).Sprite = "b_king.png"
	if err := NewWriter(cfg).WriteBoard(b, rec); err != nil {
		t.Fatalf("WriteBoard() = %v", err)
	}

	var got JSONBoard
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	want := JSONBoard{
		Snapshot: "20000001" + strings.Repeat("0", 56),
		Pieces: []JSONPiece{
			{Square: "a1", Owner: "Second", Kind: "King", Code: 134, Sprite: "b_king.png"},
			{Square: "h1", Owner: "First", Kind: "Queen", Code: 5},
		},
		Placement:      "8/8/8/8/8/8/8/k6Q",
		ActiveColor:    "b",
		Castling:       "-",
		EnPassant:      "-",
		HalfmoveClock:  "0",
		FullmoveNumber: "1",
	}
	testutil.AssertEqual(t, got, want)
}

func TestBoardToJSONEmpty(t *testing.T) {
	jb := BoardToJSON(chess.NewBoard(), notation.Record{})
	if jb.Pieces == nil || len(jb.Pieces) != 0 {
		t.Errorf("Pieces = %v; want empty non-nil slice", jb.Pieces)
	}

	data, err := json.Marshal(jb)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, string(data), `"pieces":[]`)
	if strings.Contains(string(data), "placement") {
		t.Errorf("empty record fields should be omitted: %s", data)
	}
}
