package core

import "math"

// Radiance and density helpers shared across packages

// MinPDF is the smallest sampling density the integrator will divide by
const MinPDF = 1e-8

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
