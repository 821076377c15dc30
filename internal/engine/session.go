package engine

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

var (
	ErrNotIdle = errors.New("engine: session is not idle")
	ErrNotOver = errors.New("engine: session is not over")
)

// HighScores is the persistence boundary for per-game best scores.
// A game with no stored value loads as 0.
type HighScores interface {
	LoadHighScore(gameID string) (int, error)
	SaveHighScore(gameID string, value int) error
}

// Status is a snapshot of the session counters.
type Status struct {
	State     State
	Won       bool
	Score     int
	Lives     int
	HighScore int
	Tick      uint64
}

// TickResult is what one session tick produced.
type TickResult struct {
	Events []GameEvent
	Status Status
}

// Session drives one game through Idle → Running → Over, applying the
// world's events to score and lives.
type Session struct {
	profile *Profile
	scores  HighScores
	logger  *log.Logger
	seed    int64
	runs    int64
	onOver  func(Status)

	state     State
	won       bool
	score     int
	lives     int
	highScore int
	world     *World
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithSeed sets the base RNG seed. Each run derives its world seed from
// it, so restarts differ but stay reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithOverHook registers fn to be called once on every transition into
// Over, after the high score was persisted.
func WithOverHook(fn func(Status)) Option {
	return func(s *Session) {
		s.onOver = fn
	}
}

// NewSession creates an idle session. The stored high score is loaded
// once; failures are logged and read as 0.
func NewSession(p *Profile, scores HighScores, opts ...Option) *Session {
	s := &Session{
		profile: p,
		scores:  scores,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.highScore = s.loadHighScore()
	return s
}

func (s *Session) loadHighScore() int {
	if s.scores == nil {
		return 0
	}
	v, err := s.scores.LoadHighScore(s.profile.ID)
	if err != nil {
		s.logger.Warn("high score unavailable", "game", s.profile.ID, "err", err)
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// Start begins a run from Idle.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrNotIdle
	}
	s.begin()
	return nil
}

// Restart begins a new, independent run from Over.
func (s *Session) Restart() error {
	if s.state != StateOver {
		return ErrNotOver
	}
	s.begin()
	return nil
}

// Abandon leaves a running game without recording anything.
func (s *Session) Abandon() {
	if s.state != StateRunning {
		return
	}
	s.logger.Debug("run abandoned", "game", s.profile.ID, "score", s.score)
	s.state = StateIdle
}

func (s *Session) begin() {
	s.score = 0
	s.won = false
	s.lives = s.profile.lives()
	s.world = NewWorld(s.profile, s.seed+s.runs, s.logger)
	s.runs++
	s.state = StateRunning
	s.logger.Debug("run started", "game", s.profile.ID, "run", s.runs)
}

// Tick advances a running session by one fixed step. In any other state
// it does nothing and reports the current status.
func (s *Session) Tick(dt float64, in core.InputSnapshot) TickResult {
	if s.state != StateRunning {
		return TickResult{Status: s.Status()}
	}

	s.world.NoteScore(s.score)
	events := s.world.Step(dt, in)

	for _, ev := range events {
		s.score += ev.Points
		if ev.CostsLife() && s.lives > 0 {
			s.lives--
			if s.lives > 0 {
				s.world.Respawn()
			}
		}
	}

	switch {
	case s.lives == 0:
		s.finish(false)
	case s.profile.WinOnClear && s.world.Count(core.KindObstacle) == 0:
		s.finish(true)
	}

	return TickResult{Events: events, Status: s.Status()}
}

func (s *Session) finish(won bool) {
	s.state = StateOver
	s.won = won
	if s.score > s.highScore {
		s.highScore = s.score
	}
	if s.scores != nil {
		if err := s.scores.SaveHighScore(s.profile.ID, s.highScore); err != nil {
			s.logger.Error("saving high score", "game", s.profile.ID, "err", err)
		}
	}
	s.logger.Info("game over", "game", s.profile.ID, "score", s.score, "won", won, "high", s.highScore)
	if s.onOver != nil {
		s.onOver(s.Status())
	}
}

// Status returns the current counters.
func (s *Session) Status() Status {
	st := Status{
		State:     s.state,
		Won:       s.won,
		Score:     s.score,
		Lives:     s.lives,
		HighScore: s.highScore,
	}
	if s.world != nil {
		st.Tick = s.world.Tick()
	}
	return st
}

// Sprites returns the render view of the current world, or nil before the
// first run.
func (s *Session) Sprites() []core.Sprite {
	if s.world == nil {
		return nil
	}
	return s.world.Sprites()
}

// World exposes the current run's world; nil before the first Start.
func (s *Session) World() *World { return s.world }

func (s *Session) State() State   { return s.state }
func (s *Session) Won() bool      { return s.won }
func (s *Session) Score() int     { return s.score }
func (s *Session) Lives() int     { return s.lives }
func (s *Session) HighScore() int { return s.highScore }

// GameID returns the profile id used as the persistence key.
func (s *Session) GameID() string { return s.profile.ID }

func (s *Session) Title() string { return s.profile.Title }
