package app

import "trivia/internal/domain"

const (
	// unansweredPenalty is the attempt cost charged for each unanswered question.
	unansweredPenalty = 10
	highBandMin       = 9.0
	midBandMin        = 6.0
)

// ComputeScore reduces per-question outcomes into a final score. The average
// attempt count (unanswered questions cost unansweredPenalty) is subtracted
// from 10, or from 11 when every question was answered. It panics on an empty
// slice.
func ComputeScore(outcomes []domain.Outcome) domain.ScoreResult {
	if len(outcomes) == 0 {
		panic("app: ComputeScore called without outcomes")
	}

	unanswered := 0
	totalAttempts := 0
	for _, outcome := range outcomes {
		if outcome == domain.Unanswered {
			unanswered++
		}
		totalAttempts += int(outcome)
	}

	average := float64(totalAttempts+unanswered*unansweredPenalty) / float64(len(outcomes))
	score := 11 - average
	if unanswered > 0 {
		score = 10 - average
	}

	return domain.ScoreResult{
		Total:           len(outcomes),
		Answered:        len(outcomes) - unanswered,
		Unanswered:      unanswered,
		TotalAttempts:   totalAttempts,
		AverageAttempts: average,
		Score:           score,
		Band:            BandFor(score),
	}
}

// BandFor classifies an unclamped score.
func BandFor(score float64) domain.Band {
	switch {
	case score >= highBandMin:
		return domain.BandHigh
	case score < midBandMin:
		return domain.BandLow
	default:
		return domain.BandMid
	}
}
