package scoring

// ToStrengthMeter converts a raw score into a 1-5 rating relative to the
// highest score in the same result batch. A zero maxScore yields the floor
// rating. The thresholds are expected ordered tier5 > tier4 > tier3 > tier2;
// unordered thresholds still produce a deterministic result.
func ToStrengthMeter(score, maxScore float64, t Thresholds) int {
	if maxScore == 0 {
		return 1
	}
	normalized := score / maxScore
	switch {
	case normalized >= t.Tier5:
		return 5
	case normalized >= t.Tier4:
		return 4
	case normalized >= t.Tier3:
		return 3
	case normalized >= t.Tier2:
		return 2
	default:
		return 1
	}
}
