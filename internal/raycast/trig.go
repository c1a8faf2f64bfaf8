package raycast

import "math"

// Angle quantization. A full revolution is AngleUnits steps and each screen
// column advances the ray by one step, so FOVUnits steps span the 60 degree
// field of view. Angles grow counter-clockwise with 0 pointing east.
const (
	AngleUnits  = 960
	FOVUnits    = 160
	HalfFOV     = FOVUnits / 2
	QuarterTurn = AngleUnits / 4
	HalfTurn    = AngleUnits / 2

	snapEpsilon = 1e-12
)

// Angle indexes the trigonometry tables. Valid values lie in [0, AngleUnits).
type Angle int

// Normalize wraps any integer angle into [0, AngleUnits).
func Normalize(a int) Angle {
	a %= AngleUnits
	if a < 0 {
		a += AngleUnits
	}
	return Angle(a)
}

// Degrees converts a to degrees for error messages.
func (a Angle) Degrees() float64 {
	return float64(a) * 360 / AngleUnits
}

var (
	sinLUT [AngleUnits]float64
	cosLUT [AngleUnits]float64
	tanLUT [AngleUnits]float64
	cotLUT [AngleUnits]float64
)

func init() {
	// First quadrant only; the rest is folded from it so that mirrored angles
	// share bit-identical magnitudes.
	var quadrant [QuarterTurn + 1]float64
	for i := range quadrant {
		quadrant[i] = snap(math.Sin(math.Pi / 2 * float64(i) / QuarterTurn))
	}
	fold := func(i int) float64 {
		r := i % QuarterTurn
		switch i / QuarterTurn {
		case 0:
			return quadrant[r]
		case 1:
			return quadrant[QuarterTurn-r]
		case 2:
			return -quadrant[r]
		default:
			return -quadrant[QuarterTurn-r]
		}
	}
	for i := 0; i < AngleUnits; i++ {
		sinLUT[i] = fold(i)
		cosLUT[i] = fold((i + QuarterTurn) % AngleUnits)
	}
	for i := 0; i < AngleUnits; i++ {
		s, c := sinLUT[i], cosLUT[i]
		tanLUT[i] = ratio(s, c)
		cotLUT[i] = ratio(c, s)
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		if num < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return snap(num / den)
}

func snap(v float64) float64 {
	switch {
	case math.Abs(v) < snapEpsilon:
		return 0
	case math.Abs(v-1) < snapEpsilon:
		return 1
	case math.Abs(v+1) < snapEpsilon:
		return -1
	}
	return v
}

// Sin returns the table sine of a.
func Sin(a Angle) float64 { return sinLUT[a] }

// Cos returns the table cosine of a.
func Cos(a Angle) float64 { return cosLUT[a] }

// Tan returns the table tangent of a. It is infinite at 90 and 270 degrees.
func Tan(a Angle) float64 { return tanLUT[a] }

// Cot returns the table cotangent of a. It is infinite at 0 and 180 degrees.
func Cot(a Angle) float64 { return cotLUT[a] }
