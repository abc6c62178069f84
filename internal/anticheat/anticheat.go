package anticheat

import (
	"sync"
	"time"
)

// Telemetry is the client-reported bundle submitted once at game end.
type Telemetry struct {
	ReactionTimes    []float64 // milliseconds, in order
	ScoreHistory     []int     // cumulative score samples, in order
	BubblesPerSecond float64   // declared spawn rate
	GameDuration     float64   // declared duration in seconds
}

const (
	defaultBubblesPerSecond = 2
	defaultGameDuration     = 60

	// flagThreshold is the summed contribution above which a game is
	// flagged. Strictly greater than, so five 0.4s stay clean.
	flagThreshold = 2.0
)

// withDefaults fills the declared parameters a client left unspecified.
func (t Telemetry) withDefaults() Telemetry {
	if t.BubblesPerSecond <= 0 {
		t.BubblesPerSecond = defaultBubblesPerSecond
	}
	if t.GameDuration <= 0 {
		t.GameDuration = defaultGameDuration
	}
	return t
}

// CheckFunc scores one heuristic over a game's telemetry, returning a
// suspicion contribution in [0,1]. Missing or insufficient data degrades to
// 0, never to an error.
type CheckFunc func(t Telemetry) float64

type Check struct {
	Name string
	Fn   CheckFunc
}

// Result is the verdict for one analyzed game, with the per-check
// breakdown that produced it.
type Result struct {
	Clean         bool
	Total         float64
	Contributions []float64
}

// Flag is one entry of the append-only suspicious-activity log.
type Flag struct {
	PlayerID      string
	Telemetry     Telemetry
	Contributions []float64
	Total         float64
	FlaggedAt     time.Time
}

// Analyzer runs the configured checks over each game's telemetry. Analysis
// is stateless per call; the only retained state is the flag log.
type Analyzer struct {
	checks []Check

	mu    sync.Mutex
	flags []Flag
}

func NewAnalyzer(pointsPerBubble int) *Analyzer {
	return NewAnalyzerWithChecks(DefaultChecks(pointsPerBubble))
}

// NewAnalyzerWithChecks builds an analyzer from custom check strategies.
func NewAnalyzerWithChecks(checks []Check) *Analyzer {
	return &Analyzer{checks: checks}
}

// Analyze scores one game. A summed contribution strictly above the
// threshold yields a flag, recorded with the telemetry and breakdown. The
// verdict has no effect on gameplay outcome.
func (a *Analyzer) Analyze(playerID string, t Telemetry) Result {
	t = t.withDefaults()

	contributions := make([]float64, len(a.checks))
	var total float64
	for i, check := range a.checks {
		v := clamp01(check.Fn(t))
		contributions[i] = v
		total += v
	}

	res := Result{
		Clean:         total <= flagThreshold,
		Total:         total,
		Contributions: contributions,
	}
	if !res.Clean {
		a.mu.Lock()
		a.flags = append(a.flags, Flag{
			PlayerID:      playerID,
			Telemetry:     t,
			Contributions: contributions,
			Total:         total,
			FlaggedAt:     time.Now(),
		})
		a.mu.Unlock()
	}
	return res
}

// Flags returns a copy of the suspicious-activity log.
func (a *Analyzer) Flags() []Flag {
	a.mu.Lock()
	defer a.mu.Unlock()
	flags := make([]Flag, len(a.flags))
	copy(flags, a.flags)
	return flags
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
