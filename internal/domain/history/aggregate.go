package history

// TotalCount sums the repetition counts logged for one meditation, skipping
// soft-deleted records. An unknown meditation id yields 0.
func TotalCount(h History, meditationID string) int {
	total := 0
	for _, rec := range h[meditationID] {
		if rec.Deleted {
			continue
		}
		total += rec.Count
	}
	return total
}
