package solver

import (
	"errors"
	"testing"
)

// mustResp parses a tile string or fails the test.
func mustResp(t *testing.T, tiles string) Response {
	t.Helper()
	r, err := ParseResponse(tiles)
	if err != nil {
		t.Fatalf("ParseResponse(%q): %v", tiles, err)
	}
	return r
}

func TestScore(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          string
	}{
		{"crane", "crane", "ggggg"},
		{"slate", "crane", "bbgbg"},
		{"eerie", "slate", "bbbbg"},
		// duplicate guess letters only credited up to unmatched answer copies
		{"papal", "apple", "yygby"},
		{"apple", "papal", "yygyb"},
		{"sills", "silly", "ggggb"},
		{"humid", "apple", "bbbbb"},
	}
	for _, tt := range tests {
		got, err := Score(tt.guess, tt.answer)
		if err != nil {
			t.Errorf("Score(%q, %q): %v", tt.guess, tt.answer, err)
			continue
		}
		want := mustResp(t, tt.want)
		if got != want {
			t.Errorf("Score(%q, %q) = %s, want %s", tt.guess, tt.answer, got, want)
		}
	}
}

func TestScoreSelfMatchIsAllHit(t *testing.T) {
	for _, w := range []string{"crane", "apple", "zebra"} {
		r, err := Score(w, w)
		if err != nil {
			t.Fatalf("Score(%q, %q): %v", w, w, err)
		}
		if r != AllHit {
			t.Errorf("Score(%q, %q) = %s, want all hits", w, w, r)
		}
	}
}

func TestScoreInvalidLength(t *testing.T) {
	if _, err := Score("cranes", "crane"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Score long guess: got %v, want ErrInvalidLength", err)
	}
	if _, err := Score("crane", "cran"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Score short answer: got %v, want ErrInvalidLength", err)
	}
}

func TestResponseTile(t *testing.T) {
	r := mustResp(t, "gybgy")
	want := []Tile{TileHit, TilePresent, TileMiss, TileHit, TilePresent}
	for i, w := range want {
		if got := r.Tile(i); got != w {
			t.Errorf("Tile(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestParseResponse(t *testing.T) {
	// case-insensitive letters and emoji both parse to the same value
	a := mustResp(t, "GyBgY")
	b := mustResp(t, "🟩🟨⬛🟩🟨")
	if a != b {
		t.Errorf("letter and emoji forms disagree: %s vs %s", a, b)
	}

	if _, err := ParseResponse("ggg"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short response: got %v, want ErrInvalidLength", err)
	}
	if _, err := ParseResponse("gggggg"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("long response: got %v, want ErrInvalidLength", err)
	}
	if _, err := ParseResponse("gxggg"); err == nil {
		t.Error("invalid tile character: expected error")
	}
}

func TestResponseString(t *testing.T) {
	if got := mustResp(t, "bbybg").String(); got != "⬛⬛🟨⬛🟩" {
		t.Errorf("String() = %q", got)
	}
	if got := AllHit.String(); got != "🟩🟩🟩🟩🟩" {
		t.Errorf("AllHit.String() = %q", got)
	}
}

func TestParseHistory(t *testing.T) {
	h, err := ParseHistory("crane:bbyyb, sloth:gybbb")
	if err != nil {
		t.Fatalf("ParseHistory: %v", err)
	}
	if len(h) != 2 || h[0].Guess != "crane" || h[1].Guess != "sloth" {
		t.Fatalf("unexpected history: %+v", h)
	}
	if h[0].Response != mustResp(t, "bbyyb") {
		t.Errorf("first response = %s", h[0].Response)
	}

	if h, err := ParseHistory("  "); err != nil || h != nil {
		t.Errorf("blank history: got %v, %v", h, err)
	}
	if _, err := ParseHistory("crane"); err == nil {
		t.Error("missing tiles: expected error")
	}
	if _, err := ParseHistory("cranes:bbbbb"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("bad guess length: got %v, want ErrInvalidLength", err)
	}
}

func TestHistoryAgainst(t *testing.T) {
	h, err := HistoryAgainst([]string{"crane", "slate"}, "slate")
	if err != nil {
		t.Fatalf("HistoryAgainst: %v", err)
	}
	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}
	if h[1].Response != AllHit {
		t.Errorf("final response = %s, want all hits", h[1].Response)
	}
}
