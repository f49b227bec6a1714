package system

import (
	"github.com/lixenwraith/paperflight/engine"
	"github.com/lixenwraith/paperflight/parameter"
)

// ScoreSystem applies the survival trickle and checks the challenge goal
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

func (s *ScoreSystem) Update(w *engine.World) {
	if !w.State.Playing() {
		return
	}
	w.State.AddScore(parameter.ScoreTrickle)
	if w.State.ChallengeMet() {
		w.State.End(engine.ReasonChallengeComplete)
	}
}
