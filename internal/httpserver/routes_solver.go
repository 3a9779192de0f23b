// internal/httpserver/routes_solver.go
//
// HTTP routes for the solver engine.
// Exposes:
//   - GET  /assess         → plain-text game assessment (g=comma-separated guesses)
//   - POST /solve          → JSON ranked next guesses for an explicit history
//   - POST /session/new    → start a solve session (server accumulates history)
//   - POST /session/guess  → record an observed guess+response, get a fresh report
//   - GET  /daily          → today's deterministic benchmark answer index
//   - POST /simulate       → run a self-play simulation (auth required)
//   - GET  /simulations    → list the caller's persisted runs (auth required)
//
// A contradictory history is a normal outcome ("no consistent words
// remain"), returned with a 200; only malformed input gets a 400.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/simstore"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// defaultBudget bounds scored guesses per selection when the caller
// doesn't pass one. Callers with large candidate sets should lower it.
const defaultBudget = 1000

// mountSolver registers the public solver routes.
func (s *Server) mountSolver(r chi.Router) {
	r.Get("/assess", s.handleAssess)
	r.Post("/solve", s.handleSolve)
	r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.Post("/guess", s.handleSessionGuess)
	})
	r.Get("/daily", s.handleDaily)
}

// strategyTable adapts the nullable table field to the solver interface.
// A nil *strategy.Table must not become a non-nil interface value.
func (s *Server) strategyTable() solver.StrategyTable {
	if s.table == nil {
		return nil
	}
	return s.table
}

// -----------------------------------------------------------------------------
// GET /assess

// handleAssess replays the guesses in "g" (last one is the answer) and
// returns the plain-text report.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	g := strings.TrimSpace(r.URL.Query().Get("g"))
	if g == "" {
		http.Error(w, `{"error":"must pass 'g' with comma-separated guesses"}`, http.StatusBadRequest)
		return
	}
	var guesses []string
	for _, part := range strings.Split(g, ",") {
		guesses = append(guesses, strings.ToLower(strings.TrimSpace(part)))
	}
	budget := queryInt(r, "budget", defaultBudget)
	topN := queryInt(r, "top", solver.DefaultTopN)

	report, err := solver.AssessGame(guesses, words.Answers(), words.Valid(), budget, topN, s.strategyTable())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report))
}

// -----------------------------------------------------------------------------
// POST /solve

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	History []historyEntry `json:"history"`
	Budget  int            `json:"budget"`
	TopN    int            `json:"topN"`
}
type historyEntry struct {
	Guess    string `json:"guess"`
	Response string `json:"response"` // tiles as g/y/b or emoji
}

// handleSolve assesses an explicit (guess, response) history.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	history, err := historyFromEntries(req.History)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if req.Budget <= 0 {
		req.Budget = defaultBudget
	}

	report, err := solver.Assess(history, words.Answers(), words.Valid(), req.Budget, req.TopN, s.strategyTable())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(report)
}

// historyFromEntries validates and converts transport history entries.
func historyFromEntries(entries []historyEntry) (solver.History, error) {
	var h solver.History
	for _, e := range entries {
		guess := strings.ToLower(strings.TrimSpace(e.Guess))
		if !words.IsAllowed(guess) {
			return nil, errors.New("guess not in word list: " + guess)
		}
		resp, err := solver.ParseResponse(strings.TrimSpace(e.Response))
		if err != nil {
			return nil, err
		}
		h = append(h, solver.GuessRecord{Guess: guess, Response: resp})
	}
	return h, nil
}

// -----------------------------------------------------------------------------
// POST /session/new, POST /session/guess

// newSessionRes is returned by /session/new.
type newSessionRes struct {
	SessionID string `json:"sessionId"`
}

// handleNewSession creates an empty solve session.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := solver.NewSession()
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID})
}

// sessionGuessReq/Res payloads for POST /session/guess.
type sessionGuessReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Response  string `json:"response"`
	Budget    int    `json:"budget"`
	TopN      int    `json:"topN"`
}
type sessionGuessRes struct {
	Turn   int            `json:"turn"` // turn about to be played
	Report *solver.Report `json:"report"`
}

// handleSessionGuess appends an observed (guess, response) pair to a
// session and returns the assessment of the narrowed state.
func (s *Server) handleSessionGuess(w http.ResponseWriter, r *http.Request) {
	var req sessionGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.SessionID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"error":"store_error"}`, http.StatusInternalServerError)
		return
	}

	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if !words.IsAllowed(guess) {
		http.Error(w, `{"error":"not in word list"}`, http.StatusBadRequest)
		return
	}
	resp, err := solver.ParseResponse(strings.TrimSpace(req.Response))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := sess.Record(guess, resp); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	if req.Budget <= 0 {
		req.Budget = defaultBudget
	}
	report, err := solver.Assess(sess.History, words.Answers(), words.Valid(), req.Budget, req.TopN, s.strategyTable())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionGuessRes{Turn: sess.Turn(), Report: report})
}

// -----------------------------------------------------------------------------
// GET /daily

// dailyRes is returned by /daily. Turns is how many guesses the engine
// itself needs for the day's answer (MaxTurns+1 marks a loss), the
// benchmark number deployments compare.
type dailyRes struct {
	Date  string `json:"date"`
	Index int    `json:"index"`
	Word  string `json:"word"`
	Seed  int64  `json:"seed"`
	Turns int    `json:"turns"`
}

// handleDaily reports the deterministic benchmark answer for the given
// date (default today) so separate deployments can compare runs.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, `{"error":"bad date, want YYYY-MM-DD"}`, http.StatusBadRequest)
			return
		}
		now = t
	}
	salt := getEnv("DAILY_SALT", "local_dev_salt")
	answers := words.Answers()
	idx := daily.AnswerIndex(now, salt, len(answers))
	res := dailyRes{Date: daily.DateKey(now), Index: idx, Seed: daily.Seed(now, salt)}
	if len(answers) > 0 {
		res.Word = answers[idx]
		cfg := solver.SimConfig{Budget: defaultBudget, Table: s.strategyTable()}
		turns, err := solver.PlayGame(res.Word, answers, words.Valid(), cfg)
		if err != nil {
			log.Warn().Err(err).Str("word", res.Word).Msg("daily benchmark play")
		} else {
			res.Turns = turns
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// POST /simulate, GET /simulations

// simulateReq is the request payload for /simulate.
type simulateReq struct {
	Trials   int    `json:"trials"`
	MaxTurns int    `json:"maxTurns"`
	Budget   int    `json:"budget"`
	Opening  string `json:"opening"`
	Seed     int64  `json:"seed"`
}

// maxTrials caps one request's work; bigger studies run offline.
const maxTrials = 100000

// handleSimulate runs a self-play simulation and persists the result
// for the authenticated caller.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Trials <= 0 || req.Trials > maxTrials {
		http.Error(w, `{"error":"trials must be 1-`+strconv.Itoa(maxTrials)+`"}`, http.StatusBadRequest)
		return
	}
	req.Opening = strings.ToLower(strings.TrimSpace(req.Opening))
	if req.Opening != "" && !words.IsAllowed(req.Opening) {
		http.Error(w, `{"error":"opening not in word list"}`, http.StatusBadRequest)
		return
	}
	if req.Budget <= 0 {
		req.Budget = defaultBudget
	}
	if req.MaxTurns <= 0 {
		req.MaxTurns = solver.DefaultMaxTurns
	}

	cfg := solver.SimConfig{
		Trials:   req.Trials,
		MaxTurns: req.MaxTurns,
		Budget:   req.Budget,
		Opening:  req.Opening,
		Seed:     req.Seed,
		Table:    s.strategyTable(),
	}
	hist, err := solver.Simulate(words.Answers(), words.Valid(), cfg)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	run := simstore.Run{
		ID:        genID(),
		UserID:    me.ID,
		Trials:    req.Trials,
		MaxTurns:  cfg.MaxTurns,
		Budget:    req.Budget,
		Opening:   req.Opening,
		Seed:      req.Seed,
		AvgTurns:  hist.Average(),
		Losses:    hist.Losses,
		Histogram: hist,
		CreatedAt: time.Now().UTC(),
	}
	// Persist best-effort; the histogram is still returned on failure.
	if s.runs != nil {
		if err := s.runs.Insert(r.Context(), run); err != nil {
			log.Warn().Err(err).Str("user", me.ID).Msg("insert simulation run")
		}
	}
	_ = json.NewEncoder(w).Encode(run)
}

// handleListSimulations returns the caller's recent runs.
func (s *Server) handleListSimulations(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil || s.runs == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	limit := queryInt(r, "limit", 20)
	runs, err := s.runs.ListByUser(r.Context(), me.ID, limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(runs)
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
