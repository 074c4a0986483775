package standings

// HitRatio converts a hit count out of a total into a percentage.
// A zero total yields 0 rather than an error; callers treat "no matches
// played" as a 0% ratio. Hit is expected to be at most total; no bounds
// checking is performed.
func HitRatio(hit, total int) float64 {
	if total == 0 {
		return 0
	}
	return (float64(hit) / float64(total)) * 100
}
