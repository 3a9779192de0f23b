package strategy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

const sampleTable = `v1
# built offline
abbey 127 slate
ample 3 apple
`

func TestParseAndLookup(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	if table.Version() != 1 || table.Len() != 2 {
		t.Fatalf("version=%d len=%d", table.Version(), table.Len())
	}

	// key is the alphabetically first candidate plus the count, whatever
	// order the caller's slice is in
	guess, ok := table.Lookup([]string{"apple", "ample", "angle"})
	if !ok || guess != "apple" {
		t.Errorf("Lookup = %q, %v; want apple, true", guess, ok)
	}

	if _, ok := table.Lookup([]string{"apple", "ample"}); ok {
		t.Error("count 2 has no entry; Lookup should miss")
	}
	if _, ok := table.Lookup(nil); ok {
		t.Error("empty candidate set should miss")
	}
}

func TestLookupNilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup([]string{"apple"}); ok {
		t.Error("nil table should never hit")
	}
}

func TestParseRejectsMalformedTables(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no version header", "abbey 127 slate\n"},
		{"future version", "v2\n"},
		{"wrong field count", "v1\nabbey slate\n"},
		{"bad count", "v1\nabbey zero slate\n"},
		{"zero count", "v1\nabbey 0 slate\n"},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.in)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	encoded := table.Encode()

	again, err := Parse(encoded)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !bytes.Equal(encoded, again.Encode()) {
		t.Errorf("Encode not stable:\n%s\nvs\n%s", encoded, again.Encode())
	}
	if guess, ok := again.Lookup([]string{"ample", "angle", "apple"}); !ok || guess != "apple" {
		t.Errorf("round-tripped Lookup = %q, %v", guess, ok)
	}
}

func TestBuildRecordsOpeningForFullSet(t *testing.T) {
	// "apple" splits these three answers into singleton clusters, so the
	// only entry is the full-set opening.
	answers := []string{"apple", "angle", "ample"}
	table, err := Build(answers, answers, "apple", 0)
	if err != nil {
		t.Fatal(err)
	}
	guess, ok := table.Lookup(answers)
	if !ok || guess != "apple" {
		t.Errorf("full-set Lookup = %q, %v; want opening apple", guess, ok)
	}
}

func TestBuildRecordsLargeClusters(t *testing.T) {
	// "torch" shares no letters with any answer: one cluster of four,
	// which must get its own entry overriding the plain opening.
	answers := []string{"apple", "angle", "ample", "amble"}
	valid := append([]string{"torch"}, answers...)
	table, err := Build(answers, valid, "torch", 0)
	if err != nil {
		t.Fatal(err)
	}
	guess, ok := table.Lookup(answers)
	if !ok {
		t.Fatal("expected an entry for the four-word cluster")
	}
	if guess == "torch" {
		t.Error("cluster entry should hold the selector's pick, not the opening again")
	}
}

func TestBuildEmptyAnswers(t *testing.T) {
	if _, err := Build(nil, nil, "apple", 0); !errors.Is(err, solver.ErrNoCandidates) {
		t.Errorf("got %v, want ErrNoCandidates", err)
	}
}
