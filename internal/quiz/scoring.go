package quiz

// PointsFor scores one question. Running out of time costs a point; a correct
// answer earns one unless the hint was shown.
func PointsFor(correct, usedHint, timedOut bool) int {
	switch {
	case timedOut:
		return -1
	case !correct:
		return 0
	case usedHint:
		return 0
	default:
		return 1
	}
}
