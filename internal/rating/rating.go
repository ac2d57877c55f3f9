// Package rating holds the star bounds shared by the reducer, request
// validation and storage.
package rating

const (
	MinRating = 1
	MaxRating = 5
)

// Up returns r raised by one star, capped at MaxRating.
func Up(r int) int {
	return min(MaxRating, r+1)
}

// Down returns r lowered by one star, floored at MinRating.
func Down(r int) int {
	return max(MinRating, r-1)
}

// Valid reports whether r lies within [MinRating, MaxRating].
func Valid(r int) bool {
	return r >= MinRating && r <= MaxRating
}
