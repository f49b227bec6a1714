package parameter

// Score increments
const (
	ScoreTrickle      = 0.1
	ScoreBuildingPass = 10.0
	ScoreRing         = 50.0
)

// ChallengeGoal is the ring count required to complete Challenge mode
const ChallengeGoal = 10

// Mode toggle labels, naming the mode the toggle would switch to
const (
	LabelSwitchToChallenge = "Switch to Challenge Mode"
	LabelSwitchToEndless   = "Switch to Endless Mode"
)
