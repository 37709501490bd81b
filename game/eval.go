package game

const Tie = -1

// Differential is side 0's score minus side 1's score.
func Differential(b Board) int {
	return b.Score(0) - b.Score(1)
}

// Winner returns the side with the higher score, or Tie.
func Winner(score0, score1 int) int {
	switch {
	case score0 > score1:
		return 0
	case score1 > score0:
		return 1
	default:
		return Tie
	}
}

// Normalized scales the differential to a value between -1 and 1 from side 0's
// perspective.
func Normalized(b Board) float64 {
	return normalize(float64(b.Score(0)), float64(b.Score(1)))
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
