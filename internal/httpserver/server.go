// internal/httpserver/server.go
//
// HTTP wiring for the grid engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, then per-session routes under
//     /game/{id} guarded by a signed session token.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - Sessions live only in memory (store.Store).
//   - The answer is never sent to the client before the game is over.
//   - Every session route runs under store.Update, so a session only ever
//     sees one request at a time.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/session"
	"github.com/robalobadob/wordgrid/internal/store"
)

// Options configures a Server.
type Options struct {
	Store        store.Store
	Factory      *session.Factory
	JWTSecret    string
	TokenTTL     time.Duration
	ClientOrigin string
	Logger       zerolog.Logger
}

// Server bundles router, session store and game factory.
type Server struct {
	r       *chi.Mux
	store   store.Store
	factory *session.Factory
	tokens  tokenSigner
	origin  string
	log     zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) *Server {
	ttl := o.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   o.Store,
		factory: o.Factory,
		tokens:  tokenSigner{secret: []byte(o.JWTSecret), ttl: ttl},
		origin:  o.ClientOrigin,
		log:     o.Logger,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(s.requestLogger)                 // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordgrid","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/{id}/key","POST /game/{id}/guess","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.factory.Lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g, "sessions": s.store.Len()})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGet)
		r.Post("/key", s.handleKey)
		r.Post("/guess", s.handleGuess)
		r.Delete("/", s.handleDelete)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed", "method": r.Method})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status and latency at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// requireSession checks that the bearer token was issued for {id}.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		gid, err := s.tokens.parse(bearer(r))
		if err != nil || gid != id {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
	Daily  bool   `json:"daily"`  // today's shared word
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// an empty body means "random answer"
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.startGame(w, r, session.Options{Answer: req.Answer, Daily: req.Daily})
}

// startGame creates a session, registers it and hands out its token.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, opts session.Options) {
	g, err := s.factory.New(opts)
	if err != nil {
		if errors.Is(err, session.ErrUnknownAnswer) {
			writeError(w, http.StatusBadRequest, "unknown_answer")
			return
		}
		s.log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	id, err := s.store.Add(r.Context(), g)
	if err != nil {
		s.log.Error().Err(err).Msg("store game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, err := s.tokens.sign(id)
	if err != nil {
		s.log.Error().Err(err).Str("gameId", id).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	name := petname.Generate(2, "-")
	s.log.Info().Str("gameId", id).Str("name", name).Bool("daily", opts.Daily).Msg("game started")
	writeJSON(w, http.StatusCreated, newGameRes{GameID: id, Token: tok, Name: name, Rows: g.Rows(), Cols: g.Cols()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.View(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) error {
		snap = g.Snapshot()
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type keyReq struct {
	Key string `json:"key"`
}
type keyRes struct {
	OK       bool               `json:"ok"`
	Result   *game.SubmitResult `json:"result,omitempty"`
	Snapshot game.Snapshot      `json:"snapshot"`
}

// handleKey applies one input event.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	ev, err := game.ParseKey(req.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_key")
		return
	}
	var res keyRes
	err = s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) error {
		out := g.Apply(ev)
		res.OK = out.OK
		if ev.Action == game.ActionSubmit {
			res.Result = &out.Result
		}
		res.Snapshot = g.Snapshot()
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// guessReq/Res payloads for POST /game/{id}/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Result   game.SubmitResult `json:"result"`
	Marks    []game.Feedback   `json:"marks,omitempty"`
	State    game.State        `json:"state"`
	Snapshot game.Snapshot     `json:"snapshot"`
}

// handleGuess replaces the current row with a whole word and submits it.
// Rejected guesses answer 422 and leave the session untouched.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess := strings.ToUpper(strings.TrimSpace(req.Guess))
	if !isLetters(guess) {
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}

	var res guessRes
	tooLong := false
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) error {
		// a row cannot hold more letters than it has columns
		if len(guess) > g.Cols() {
			tooLong = true
			return nil
		}
		res.Result = s.precheck(g, guess)
		if res.Result == game.Accepted {
			row := g.Cursor().Position().Row
			g.ClearRow()
			for _, c := range guess {
				g.Type(c)
			}
			res.Result = g.Submit()
			for _, c := range g.Row(row) {
				res.Marks = append(res.Marks, c.Mark)
			}
		}
		res.State = g.State()
		res.Snapshot = g.Snapshot()
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	if tooLong {
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}
	status := http.StatusOK
	if res.Result != game.Accepted {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

// precheck decides a whole-word guess the way Submit would, without
// retyping the row first.
func (s *Server) precheck(g *game.Session, guess string) game.SubmitResult {
	switch {
	case g.State().Finished():
		return game.RejectedFinished
	case len(guess) < g.Cols():
		return game.RejectedIncomplete
	case !s.factory.Lists.Allowed.Contains(guess):
		return game.RejectedNotInDictionary
	}
	return game.Accepted
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	_ = s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------- helpers -----------------------------------

func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	s.log.Error().Err(err).Msg("store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// isLetters reports whether s is non-empty and all A-Z.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
