package gradient

// Rate returns frames per second for frames drawn in elapsed whole seconds.
// Zero elapsed seconds yields +Inf.
func Rate(frames int, elapsed int64) float64 {
	return float64(frames) / float64(elapsed)
}
