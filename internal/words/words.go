// internal/words/words.go
//
// Word list management for the solver engine (the lexicon).
//
// Responsibilities:
//   - Load answer and allowed-guess lists from environment-provided files
//     or fall back to embedded defaults.
//   - Validate every entry strictly: a list containing anything other
//     than 5 lowercase ASCII letters fails the whole load with
//     ErrMalformedLexicon. Blank lines and '#' comments are skipped.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply utility functions like RandomAnswer, IsAllowed, IsAnswer,
//     and Stats.
//
// Word Lists:
//   - "answers": candidate secrets (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set, fall back to the embedded defaults.
//
// Lists are read-only after Init and shared by all requests without
// synchronization. Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	_ "embed"
)

// ErrMalformedLexicon reports bad word-list input at load time. The
// process should not serve requests when Init returns it.
var ErrMalformedLexicon = errors.New("words: malformed lexicon")

// WordLen is the fixed word length accepted by the lexicon.
const WordLen = 5

// --- embedded defaults (ensure the server runs even if no files configured) ---

//go:embed default_small_answers.txt
var embeddedAnswers []byte

//go:embed default_small_allowed.txt
var embeddedAllowed []byte

var (
	initOnce   sync.Once
	answers    []string            // candidate secrets, load order preserved
	valid      []string            // answers ∪ guesses, answers first
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
	initialErr error
)

// Init loads word lists exactly once.
// Returns ErrMalformedLexicon (wrapped) for invalid entries, and an
// error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var ansList, allowList []string

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = readWordFile(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}
			ansList = allowList

		// Case 3: fallback to embedded defaults
		default:
			var err error
			ansList, err = ParseList(embeddedAnswers)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = ParseList(embeddedAllowed)
			if err != nil {
				initialErr = err
				return
			}
		}

		initialErr = install(ansList, allowList)
	})
	return initialErr
}

// install builds the lookup structures from validated lists.
func install(ansList, allowList []string) error {
	if len(ansList) == 0 {
		return fmt.Errorf("%w: answers list is empty", ErrMalformedLexicon)
	}

	answers = ansList
	answersSet = toSet(ansList)

	// Valid guesses always include every answer, answers first.
	valid = append([]string{}, ansList...)
	allowedSet = toSet(ansList)
	for _, w := range allowList {
		if _, ok := allowedSet[w]; ok {
			continue
		}
		allowedSet[w] = struct{}{}
		valid = append(valid, w)
	}
	return nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	list, err := ParseList(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// ParseList parses raw newline-delimited word-list bytes, the form the
// loader collaborator supplies. Entries are lowercased and trimmed;
// blank lines and '#' comments are skipped; any other entry that is not
// exactly WordLen ASCII letters fails the whole parse.
func ParseList(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !isWord(w) {
			return nil, fmt.Errorf("%w: line %d: %q is not %d lowercase letters", ErrMalformedLexicon, line, w, WordLen)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: scan lexicon: %w", err)
	}
	return out, nil
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isWord reports whether s is exactly WordLen lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the loaded answer list. Callers must not mutate it.
func Answers() []string { return answers }

// Valid returns the full guess pool (answers ∪ guesses), answers first.
// Callers must not mutate it.
func Valid() []string { return valid }

// RandomAnswer returns a cryptographically random answer from the
// answers list. If answers are not loaded yet or empty, falls back to
// "crane".
func RandomAnswer() string {
	if len(answers) == 0 {
		return "crane"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	return answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowedSet)
}
