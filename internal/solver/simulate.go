// internal/solver/simulate.go
//
// Self-play simulation: measure a guessing policy's turn-count
// distribution over many games. Trials are independent, so they are
// fanned out across an errgroup worker pool; only the merged histogram
// is externally observable.

package solver

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxTurns is the standard turn limit per game.
const DefaultMaxTurns = 6

// SimConfig configures one simulation run.
type SimConfig struct {
	Trials   int           // number of games to play (required, > 0)
	MaxTurns int           // turn limit; beyond it the game counts as a loss (default 6)
	Budget   int           // scored-guess budget per selection; ≤ 0 means unbounded
	Opening  string        // optional fixed first guess
	Seed     int64         // rand seed for answer drawing; fixed seed → reproducible run
	Workers  int           // parallel workers (default NumCPU)
	Table    StrategyTable // optional precomputed strategy
}

// Histogram aggregates turns-to-solve over a run. Bucket i holds games
// solved in i+1 turns; Losses holds games not solved within MaxTurns.
type Histogram struct {
	Turns  []int `json:"turns"`
	Losses int   `json:"losses"`
	Trials int   `json:"trials"`
}

// Sum returns the total games recorded across all buckets.
func (h *Histogram) Sum() int {
	total := h.Losses
	for _, n := range h.Turns {
		total += n
	}
	return total
}

// Average returns mean turns per game, counting each loss as one turn
// past the limit.
func (h *Histogram) Average() float64 {
	if h.Trials == 0 {
		return 0
	}
	total := h.Losses * (len(h.Turns) + 1)
	for i, n := range h.Turns {
		total += (i + 1) * n
	}
	return float64(total) / float64(h.Trials)
}

// Simulate plays cfg.Trials independent games. Each game draws a secret
// from answers (round-robin when trials cover the pool, seeded-random
// otherwise), then repeatedly plays the top-ranked guess until the
// secret is guessed or MaxTurns is reached.
func Simulate(answers, pool []string, cfg SimConfig) (*Histogram, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("solver: simulation trials must be positive, got %d", cfg.Trials)
	}
	if len(answers) == 0 {
		return nil, ErrNoCandidates
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers > cfg.Trials {
		cfg.Workers = cfg.Trials
	}

	// Round-robin through the pool when every answer gets covered anyway;
	// random draws are only worthwhile for sparse sampling.
	roundRobin := cfg.Trials >= len(answers)

	merged := &Histogram{Turns: make([]int, cfg.MaxTurns), Trials: cfg.Trials}
	var mu sync.Mutex

	var g errgroup.Group
	per := cfg.Trials / cfg.Workers
	extra := cfg.Trials % cfg.Workers
	start := 0
	for w := 0; w < cfg.Workers; w++ {
		count := per
		if w < extra {
			count++
		}
		first, last := start, start+count
		start = last
		seed := cfg.Seed + int64(w)

		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			local := &Histogram{Turns: make([]int, cfg.MaxTurns)}

			for trial := first; trial < last; trial++ {
				answer := answers[rng.Intn(len(answers))]
				if roundRobin {
					answer = answers[trial%len(answers)]
				}
				turns, err := PlayGame(answer, answers, pool, cfg)
				if err != nil {
					return err
				}
				if turns > cfg.MaxTurns {
					local.Losses++
				} else {
					local.Turns[turns-1]++
				}
			}

			mu.Lock()
			merged.Losses += local.Losses
			for i, n := range local.Turns {
				merged.Turns[i] += n
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}

// PlayGame plays one game against a known answer and returns the turns
// taken; MaxTurns+1 signals a loss. The policy searches the full answers
// universe, not just the secret, so the result measures real difficulty.
func PlayGame(answer string, answers, pool []string, cfg SimConfig) (int, error) {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	left := answers
	var history History

	for turn := 1; turn <= cfg.MaxTurns; turn++ {
		guess := cfg.Opening
		if turn > 1 || guess == "" {
			ranked, err := Select(pool, left, cfg.Budget, cfg.Table)
			if err != nil {
				return 0, fmt.Errorf("turn %d vs %q: %w", turn, answer, err)
			}
			guess = ranked[0].Guess
		}

		if guess == answer {
			return turn, nil
		}
		r, err := Score(guess, answer)
		if err != nil {
			return 0, err
		}
		history = append(history, GuessRecord{Guess: guess, Response: r})
		left = Filter(left, history[len(history)-1:])
	}
	return cfg.MaxTurns + 1, nil
}
