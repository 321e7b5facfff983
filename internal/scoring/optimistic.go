package scoring

// Optimistic blends points already banked with the remaining-time share of
// the projection. Once the game is over only the actual points remain. This
// is a blend, not max(actual, projection): a player quiet so far still gets
// full credit for the game time left.
func Optimistic(actual, projected, fraction float64) float64 {
	if fraction >= 1 {
		return actual
	}
	return actual + (1-fraction)*projected
}
