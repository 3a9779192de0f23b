// main.go
//
// Entry point for the Wordle solver service.
// Responsibilities:
//   - Load env config (.env supported in dev).
//   - Configure structured logging.
//   - Initialize word lists, strategy table, and SQLite database.
//   - Run the "precompute" mode (build a strategy table and print it) or
//     start the HTTP server.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/strategy"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	// Load .env if present (dev convenience; real env wins in prod).
	_ = godotenv.Load()

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Word lists must be usable before anything else.
	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("word list init failed")
	}
	log.Info().
		Int("answers", len(words.Answers())).
		Int("valid", len(words.Valid())).
		Msg("word lists loaded")

	if len(os.Args) > 1 && os.Args[1] == "precompute" {
		runPrecompute()
		return
	}

	table := loadStrategyTable()

	// Open DB and run migrations.
	dbPath := getEnv("DB_PATH", "./data/solver.db")
	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", dbPath).Msg("failed to open database")
	}
	defer db.Close()

	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	srv := httpserver.New(store.NewMemoryStore(), db, table)

	addr := ":" + getEnv("PORT", "5175")
	log.Info().Str("addr", addr).Msg("solver listening")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadStrategyTable reads STRATEGY_FILE if set, falling back to the
// embedded default. A bad table is logged and skipped; the solver works
// without one, just slower on the first guess.
func loadStrategyTable() *strategy.Table {
	var (
		raw []byte
		src string
		err error
	)
	if path := os.Getenv("STRATEGY_FILE"); path != "" {
		raw, err = os.ReadFile(path)
		src = path
	} else {
		raw, err = assets.DefaultStrategy()
		src = "embedded"
	}
	if err != nil {
		log.Warn().Err(err).Str("source", src).Msg("strategy table unavailable")
		return nil
	}
	table, err := strategy.Parse(raw)
	if err != nil {
		log.Warn().Err(err).Str("source", src).Msg("strategy table parse failed")
		return nil
	}
	log.Info().Str("source", src).Int("entries", table.Len()).Msg("strategy table loaded")
	return table
}

// runPrecompute builds a strategy table for the loaded word lists and
// writes it to stdout. Usage:
//
//	OPENING_GUESS=slate wordle-solver precompute > strategy.txt
func runPrecompute() {
	opening := getEnv("OPENING_GUESS", "slate")
	if !words.IsAllowed(opening) {
		log.Fatal().Str("opening", opening).Msg("opening guess not in allowed list")
	}

	table, err := strategy.Build(words.Answers(), words.Valid(), opening, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("strategy build failed")
	}
	fmt.Print(string(table.Encode()))
	log.Info().Int("entries", table.Len()).Str("opening", opening).Msg("strategy table built")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
