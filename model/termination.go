package model

// IsChanging reports whether curr differs from prev in at least one cell.
// Once it is false the grid has reached a fixed point.
func IsChanging(prev, curr *Grid) bool {
	return !prev.Equal(curr)
}

// IsGenerationLimitReached reports whether generation has hit the cap.
// A maxGenerations of zero means no cap.
func IsGenerationLimitReached(generation, maxGenerations int) bool {
	return maxGenerations > 0 && generation >= maxGenerations
}
