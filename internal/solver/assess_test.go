package solver

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssessEmptyHistory(t *testing.T) {
	answers := []string{"apple", "angle", "apply", "clash", "clasp"}
	rep, err := Assess(nil, answers, answers, 0, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rep.CandidateCount != len(answers) {
		t.Errorf("CandidateCount = %d, want %d", rep.CandidateCount, len(answers))
	}
	if diff := cmp.Diff(answers, rep.Candidates); diff != "" {
		t.Errorf("Candidates (-want +got):\n%s", diff)
	}
	if len(rep.Ranked) != 3 {
		t.Errorf("Ranked len = %d, want topN=3", len(rep.Ranked))
	}
	if rep.ScoredCount != len(answers) {
		t.Errorf("ScoredCount = %d, want %d", rep.ScoredCount, len(answers))
	}
	if rep.Solved || rep.NoCandidates {
		t.Errorf("unexpected flags: %+v", rep)
	}
}

func TestAssessSolved(t *testing.T) {
	answers := []string{"apple", "angle", "apply"}
	h, err := HistoryAgainst([]string{"apple"}, "angle")
	if err != nil {
		t.Fatal(err)
	}
	rep, err := Assess(h, answers, answers, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !rep.Solved || rep.CandidateCount != 1 {
		t.Fatalf("report = %+v, want solved with one candidate", rep)
	}
	if rep.Ranked[0].Guess != "angle" {
		t.Errorf("solved guess = %q, want angle", rep.Ranked[0].Guess)
	}
	if got := rep.String(); got != "solved: angle\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestAssessContradictoryHistory(t *testing.T) {
	answers := []string{"apple", "angle"}
	h := History{{Guess: "crane", Response: AllHit}}
	rep, err := Assess(h, answers, answers, 0, 0, nil)
	if err != nil {
		t.Fatalf("contradiction must report, not error: %v", err)
	}
	if !rep.NoCandidates || rep.CandidateCount != 0 {
		t.Fatalf("report = %+v, want NoCandidates", rep)
	}
	if got := rep.String(); !strings.Contains(got, "no consistent words remain") {
		t.Errorf("String() = %q", got)
	}
}

func TestReportStringShowsBudgetTruncation(t *testing.T) {
	answers := []string{"apple", "angle", "apply", "clash", "clasp"}
	rep, err := Assess(nil, answers, answers, 2, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rep.ScoredCount != 2 {
		t.Fatalf("ScoredCount = %d, want 2", rep.ScoredCount)
	}
	if got := rep.String(); !strings.Contains(got, "(scored 2 of 5 guesses)") {
		t.Errorf("String() = %q, want scored-of note", got)
	}
}

func TestAssessGame(t *testing.T) {
	answers := []string{"apple", "angle", "apply"}

	out, err := AssessGame([]string{"apple", "angle"}, answers, answers, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "=== ANGLE ===") {
		t.Errorf("missing answer banner: %q", out)
	}
	if !strings.Contains(out, "1) apple:") || !strings.Contains(out, "-> 1") {
		t.Errorf("missing first-turn narrowing line: %q", out)
	}
	if !strings.Contains(out, "solved: angle") {
		t.Errorf("missing next-move recommendation: %q", out)
	}
}

func TestAssessGameUnsolvedAppendsReport(t *testing.T) {
	answers := []string{"clash", "clasp", "class"}

	// class leaves clash and clasp in play, so the output must end with
	// an assessment of the next move.
	out, err := AssessGame([]string{"class", "clash"}, answers, answers, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "=== CLASH ===") {
		t.Errorf("missing banner: %q", out)
	}
	if !strings.Contains(out, "1) class:") || !strings.Contains(out, "-> 2") {
		t.Errorf("missing replayed turn: %q", out)
	}
	if !strings.Contains(out, "candidates remain") {
		t.Errorf("expected trailing assessment: %q", out)
	}

	// Only the answer: opening recommendation over the full set.
	out, err = AssessGame([]string{"class"}, answers, answers, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 candidates remain") {
		t.Errorf("expected opening assessment: %q", out)
	}
}

func TestAssessGameSolvedMidway(t *testing.T) {
	answers := []string{"apple", "angle", "apply"}

	// A play that hits the answer ends the transcript immediately.
	out, err := AssessGame([]string{"angle", "angle"}, answers, answers, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1) angle: 🟩🟩🟩🟩🟩 -> 1") {
		t.Errorf("missing winning turn: %q", out)
	}
	if strings.Contains(out, "candidates remain") {
		t.Errorf("solved game should not append an assessment: %q", out)
	}
}

func TestAssessGameErrors(t *testing.T) {
	answers := []string{"apple", "angle"}

	if _, err := AssessGame(nil, answers, answers, 0, 0, nil); err == nil {
		t.Error("no guesses: expected error")
	}
	if _, err := AssessGame([]string{"crane"}, answers, answers, 0, 0, nil); err == nil {
		t.Error("answer not in lexicon: expected error")
	}
	if _, err := AssessGame([]string{"abc"}, answers, answers, 0, 0, nil); err == nil {
		t.Error("short answer: expected error")
	}
}
