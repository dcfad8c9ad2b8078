package isosurf

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
