// internal/solver/response.go
//
// Response encoding and guess scoring.
// Responsibilities:
//   - Tile: per-letter result of a guess (hit/present/miss).
//   - Response: all five tiles packed into a uint16, two bits per tile,
//     first letter in the highest bits. The packed form is comparable and
//     hashable, so responses can key partition maps directly.
//   - Score: the classic two-pass Wordle algorithm with correct
//     duplicate-letter semantics.
//
// Notes:
//   - Words are plain lowercase strings of exactly WordLen letters;
//     the words package guarantees this for loaded lists.

package solver

import (
	"fmt"
	"strings"
)

// WordLen is the fixed word length for every word, guess, and response.
const WordLen = 5

// Tile represents the evaluation result for a single letter in a guess.
type Tile uint8

const (
	TileMiss    Tile = 0 // letter does not exist in the answer at all
	TilePresent Tile = 1 // letter exists in the answer but in a different position
	TileHit     Tile = 2 // letter is correct and in the correct position
)

// Response holds one tile per guess letter, packed two bits per tile.
type Response uint16

// AllHit is the response for a correct guess (every tile TileHit).
const AllHit Response = 2<<8 | 2<<6 | 2<<4 | 2<<2 | 2

// Tile returns the tile at position i (0-based, left to right).
func (r Response) Tile(i int) Tile {
	shift := 2 * (WordLen - 1 - i)
	return Tile(r >> shift & 3)
}

// String renders the emoji form, e.g. "🟩🟨⬛🟨🟨".
func (r Response) String() string {
	var sb strings.Builder
	for i := 0; i < WordLen; i++ {
		switch r.Tile(i) {
		case TileHit:
			sb.WriteRune('🟩')
		case TilePresent:
			sb.WriteRune('🟨')
		default:
			sb.WriteRune('⬛')
		}
	}
	return sb.String()
}

// ParseResponse converts a typed response to its packed form.
// Accepts 'g'/'G'/🟩 for hit, 'y'/'Y'/🟨 for present, 'b'/'B'/⬛ for miss.
func ParseResponse(text string) (Response, error) {
	var value Response
	count := 0
	for _, c := range text {
		count++
		value <<= 2
		switch c {
		case 'g', 'G', '🟩':
			value |= Response(TileHit)
		case 'y', 'Y', '🟨':
			value |= Response(TilePresent)
		case 'b', 'B', '⬛':
		default:
			return 0, fmt.Errorf("solver: invalid response tile %q in %q", c, text)
		}
	}
	if count != WordLen {
		return 0, fmt.Errorf("%w: response %q has %d tiles", ErrInvalidLength, text, count)
	}
	return value, nil
}

// Score evaluates a guess against an answer.
//
// Pass 1:
//   - Count answer letters at positions where the guess missed.
//
// Pass 2:
//   - Exact matches are TileHit.
//   - Otherwise, if unmatched answer copies of the guess letter remain,
//     mark TilePresent and consume one; else TileMiss.
//
// This credits duplicated guess letters with Present only up to the number
// of unmatched occurrences in the answer (guessing "papal" against "apple"
// yields 🟨🟨🟩⬛🟨).
func Score(guess, answer string) (Response, error) {
	if len(guess) != WordLen || len(answer) != WordLen {
		return 0, fmt.Errorf("%w: scoring %q against %q", ErrInvalidLength, guess, answer)
	}

	// Letter frequency for the non-hit answer positions (a–z).
	var unmatched [26]int
	for i := 0; i < WordLen; i++ {
		if guess[i] != answer[i] {
			if j := letterIndex(answer[i]); j >= 0 {
				unmatched[j]++
			}
		}
	}

	var value Response
	for i := 0; i < WordLen; i++ {
		value <<= 2
		if guess[i] == answer[i] {
			value |= Response(TileHit)
			continue
		}
		if j := letterIndex(guess[i]); j >= 0 && unmatched[j] > 0 {
			value |= Response(TilePresent)
			unmatched[j]--
		}
	}
	return value, nil
}

// letterIndex maps a lowercase ASCII letter to 0..25, or -1.
func letterIndex(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// isWord reports whether s is exactly WordLen lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if letterIndex(s[i]) < 0 {
			return false
		}
	}
	return true
}
