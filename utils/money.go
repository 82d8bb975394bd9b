package utils

import "math"

// Round2 membulatkan nilai uang ke 2 desimal
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
