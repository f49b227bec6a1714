package engine

import (
	"math"

	"github.com/lixenwraith/paperflight/parameter"
)

// GamePhase is the session lifecycle phase
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameMode selects whether the session has a ring goal
type GameMode uint8

const (
	ModeEndless GameMode = iota
	ModeChallenge
)

func (m GameMode) String() string {
	if m == ModeChallenge {
		return "challenge"
	}
	return "endless"
}

// ParseGameMode accepts "endless" or "challenge"
func ParseGameMode(s string) (GameMode, bool) {
	switch s {
	case "endless", "":
		return ModeEndless, true
	case "challenge":
		return ModeChallenge, true
	default:
		return ModeEndless, false
	}
}

// EndReason records why a session ended
type EndReason uint8

const (
	ReasonNone EndReason = iota
	ReasonCollision
	ReasonChallengeComplete
)

func (r EndReason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonChallengeComplete:
		return "challenge_complete"
	default:
		return "none"
	}
}

// GameState is the per-session score, mode and phase
// Owned by the simulation goroutine; presentation reads it through Frame and UiSink
type GameState struct {
	phase  GamePhase
	mode   GameMode
	reason EndReason

	score      float64
	goal       int
	finalScore int
}

// NewGameState starts a session in the Playing phase
func NewGameState(mode GameMode) *GameState {
	return &GameState{
		phase: PhasePlaying,
		mode:  mode,
		goal:  parameter.ChallengeGoal,
	}
}

func (gs *GameState) Phase() GamePhase  { return gs.phase }
func (gs *GameState) Mode() GameMode    { return gs.mode }
func (gs *GameState) Reason() EndReason { return gs.reason }
func (gs *GameState) Score() float64    { return gs.score }
func (gs *GameState) Goal() int         { return gs.goal }
func (gs *GameState) Playing() bool     { return gs.phase == PhasePlaying }

// FinalScore is floor(score) frozen at the GameOver transition, zero before it
func (gs *GameState) FinalScore() int { return gs.finalScore }

// CanTransition validates phase edges; GameOver is terminal
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	return from == PhasePlaying && to == PhaseGameOver
}

// End transitions to GameOver, returns false if the session already ended
// The first terminal transition of a tick wins
func (gs *GameState) End(reason EndReason) bool {
	if !gs.CanTransition(gs.phase, PhaseGameOver) {
		return false
	}
	gs.phase = PhaseGameOver
	gs.reason = reason
	gs.finalScore = int(math.Floor(gs.score))
	return true
}

// AddScore applies a non-negative award while playing
func (gs *GameState) AddScore(delta float64) bool {
	if !gs.Playing() || delta < 0 {
		return false
	}
	gs.score += delta
	return true
}

// CollectRing decrements the challenge goal and returns the remainder
// Endless sessions keep the goal untouched
func (gs *GameState) CollectRing() int {
	if gs.Playing() && gs.mode == ModeChallenge {
		gs.goal--
	}
	return gs.goal
}

// ChallengeMet reports a Challenge session whose goal reached zero
func (gs *GameState) ChallengeMet() bool {
	return gs.mode == ModeChallenge && gs.goal <= 0
}

// ToggleMode flips Endless and Challenge while playing and resets the goal
func (gs *GameState) ToggleMode() (GameMode, bool) {
	if !gs.Playing() {
		return gs.mode, false
	}
	if gs.mode == ModeEndless {
		gs.mode = ModeChallenge
	} else {
		gs.mode = ModeEndless
	}
	gs.goal = parameter.ChallengeGoal
	return gs.mode, true
}

// ModeLabel names the mode a toggle would switch to
func ModeLabel(mode GameMode) string {
	if mode == ModeChallenge {
		return parameter.LabelSwitchToEndless
	}
	return parameter.LabelSwitchToChallenge
}
