package anticheat

import "math"

// DefaultChecks returns the five stock heuristics in their fixed order:
// impossible reactions, pattern repetition, score anomaly, timing
// manipulation, memory tampering.
func DefaultChecks(pointsPerBubble int) []Check {
	return []Check{
		{Name: "impossible_reactions", Fn: checkImpossibleReactions},
		{Name: "pattern_repetition", Fn: checkPatternRepetition},
		{Name: "score_anomaly", Fn: scoreAnomalyCheck(pointsPerBubble)},
		{Name: "timing_manipulation", Fn: checkTimingManipulation},
		{Name: "memory_tampering", Fn: checkMemoryTampering},
	}
}

// checkImpossibleReactions looks for reflexes no human has: a mean under
// 100ms, or a spread under 20ms sustained over more than 50 samples.
func checkImpossibleReactions(t Telemetry) float64 {
	if len(t.ReactionTimes) < 10 {
		return 0
	}
	m := mean(t.ReactionTimes)
	if m < 100 {
		return 1
	}
	if stdev(t.ReactionTimes, m) < 20 && len(t.ReactionTimes) > 50 {
		return 0.5
	}
	return 0
}

// checkPatternRepetition buckets reaction times to 10ms and counts
// duplicated 4-grams in the sequence. Humans drift; replayed or scripted
// input repeats. Contribution steps at 30% and 60% duplication.
func checkPatternRepetition(t Telemetry) float64 {
	const window = 4
	if len(t.ReactionTimes) < 3*window {
		return 0
	}

	seen := make(map[[window]int]int)
	total := len(t.ReactionTimes) - window + 1
	for i := 0; i < total; i++ {
		var key [window]int
		for j := 0; j < window; j++ {
			key[j] = int(math.Round(t.ReactionTimes[i+j] / 10))
		}
		seen[key]++
	}

	duplicated := 0
	for _, n := range seen {
		if n > 1 {
			duplicated += n - 1
		}
	}
	ratio := float64(duplicated) / float64(total)
	switch {
	case ratio >= 0.6:
		return 1
	case ratio >= 0.3:
		return 0.5
	default:
		return 0
	}
}

// scoreAnomalyCheck flags a score delta exceeding 1.5x the theoretical
// per-interval maximum of spawnRate * pointsPerBubble * duration.
func scoreAnomalyCheck(pointsPerBubble int) CheckFunc {
	return func(t Telemetry) float64 {
		if len(t.ScoreHistory) < 2 {
			return 0
		}
		maxPossible := t.BubblesPerSecond * float64(pointsPerBubble) * t.GameDuration
		for i := 1; i < len(t.ScoreHistory); i++ {
			delta := float64(t.ScoreHistory[i] - t.ScoreHistory[i-1])
			if delta > maxPossible*1.5 {
				return 1
			}
		}
		return 0
	}
}

// checkTimingManipulation catches telemetry that contradicts the declared
// game clock: negative reaction times, or more total reaction time than
// the game lasted.
func checkTimingManipulation(t Telemetry) float64 {
	var sum float64
	for _, rt := range t.ReactionTimes {
		if rt < 0 {
			return 1
		}
		sum += rt
	}
	if sum/1000 > t.GameDuration {
		return 1
	}
	return 0
}

// checkMemoryTampering requires the cumulative score samples to be
// non-negative and non-decreasing; an edited score counter is not.
func checkMemoryTampering(t Telemetry) float64 {
	prev := 0
	for i, s := range t.ScoreHistory {
		if s < 0 {
			return 1
		}
		if i > 0 && s < prev {
			return 1
		}
		prev = s
	}
	return 0
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdev is the sample standard deviation (n-1 denominator).
func stdev(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
