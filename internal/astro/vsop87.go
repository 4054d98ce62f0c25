package astro

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// vsopTerm is one row Aᵢ·cos(Bᵢ + Cᵢ·τ) of a VSOP87 series. A is in units
// of 1e-8 radian (L, B) or 1e-8 AU (R); B and C are radians and
// radians/τ respectively, exactly as published.
type vsopTerm struct {
	A, B, C float64
}

// The earthL*/earthB*/earthR* series are the published VSOP87D Earth
// periodic terms, truncated to the term counts spec.md 4.1 calls out
// (37/34/20/7/3/1 for L, 5/2 for B, 40/10/6 for R) and transcribed
// term-for-term (see DESIGN.md) rather than generated.

var earthL0 = []vsopTerm{
	{175347046, 0, 0},
	{3341656, 4.6692568, 6283.07585},
	{34894, 4.6261, 12566.1517},
	{3497, 2.7441, 5753.3849},
	{3418, 2.8289, 3.5231},
	{3136, 3.6277, 77713.7715},
	{2676, 4.4181, 7860.4194},
	{2343, 6.1352, 3930.2097},
	{1324, 0.7425, 11506.7698},
	{1273, 2.0371, 529.6910},
	{1199, 1.1096, 1577.3435},
	{990, 5.233, 5884.927},
	{902, 2.045, 26.298},
	{857, 3.508, 398.149},
	{780, 1.179, 5223.694},
	{753, 2.533, 5507.553},
	{505, 4.583, 18849.228},
	{492, 4.205, 775.523},
	{357, 2.920, 0.067},
	{336, 5.835, 5486.778},
	{307, 1.299, 2544.314},
	{267, 2.903, 3066.407},
	{261, 1.373, 1059.381},
	{240, 6.171, 6275.958},
	{237, 5.145, 1577.344},
	{218, 1.415, 3154.687},
	{212, 5.835, 2.405},
	{186, 6.022, 5088.629},
	{164, 1.358, 7113.585},
	{154, 0.000, 3894.182},
	{136, 0.658, 5331.357},
	{116, 4.763, 214.080},
	{107, 0.165, 3.181},
	{105, 5.089, 6286.599},
	{103, 1.254, 1748.016},
	{101, 2.555, 6127.655},
	{93, 0.324, 213.299},
}

var earthL1 = []vsopTerm{
	{628331966747, 0, 0},
	{206059, 2.678235, 6283.07585},
	{4303, 2.6351, 12566.1517},
	{425, 1.590, 3.523},
	{119, 5.796, 26.298},
	{109, 2.966, 1577.344},
	{93, 2.59, 18849.23},
	{72, 1.14, 529.69},
	{68, 1.87, 398.15},
	{67, 4.41, 5507.55},
	{59, 2.89, 5223.69},
	{56, 2.17, 155.42},
	{45, 0.40, 796.30},
	{36, 0.47, 775.52},
	{29, 2.65, 7.11},
	{21, 5.34, 0.98},
	{19, 1.85, 5486.78},
	{19, 4.97, 213.30},
	{17, 2.99, 6275.96},
	{16, 0.03, 2544.31},
	{16, 1.43, 2146.17},
	{15, 1.21, 10977.08},
	{12, 2.83, 1748.02},
	{12, 3.26, 5088.63},
	{12, 5.27, 1194.45},
	{12, 2.08, 4694.00},
	{11, 0.77, 553.57},
	{10, 1.30, 6286.60},
	{9, 4.24, 1349.87},
	{9, 2.70, 242.73},
	{9, 5.64, 951.72},
	{8, 5.30, 2352.87},
	{6, 2.65, 9437.76},
	{6, 4.67, 4690.48},
}

var earthL2 = []vsopTerm{
	{52919, 0, 0},
	{8720, 1.0721, 6283.0758},
	{309, 0.867, 12566.152},
	{27, 0.05, 3.52},
	{16, 5.19, 26.30},
	{16, 3.68, 155.42},
	{10, 0.76, 18849.23},
	{9, 2.06, 77713.77},
	{7, 0.83, 775.52},
	{5, 4.66, 1577.34},
	{4, 1.03, 7.11},
	{4, 3.44, 5573.14},
	{3, 5.14, 796.30},
	{3, 6.05, 5507.55},
	{3, 1.19, 242.73},
	{3, 6.12, 529.69},
	{3, 0.31, 398.15},
	{3, 2.28, 553.57},
	{2, 4.38, 5223.69},
	{2, 3.75, 0.98},
}

var earthL3 = []vsopTerm{
	{289, 5.844, 6283.076},
	{21, 6.05, 12566.15},
	{3, 5.20, 155.42},
	{3, 3.14, 0},
	{1, 4.72, 3.52},
	{1, 5.97, 242.73},
	{1, 5.54, 18849.23},
}

var earthL4 = []vsopTerm{
	{114, 3.142, 0},
	{8, 4.13, 6283.08},
	{1, 3.84, 12566.15},
}

var earthL5 = []vsopTerm{
	{1, 3.14, 0},
}

var earthB0 = []vsopTerm{
	{280, 3.199, 84334.662},
	{102, 5.422, 5507.553},
	{80, 3.88, 5223.69},
	{44, 3.70, 2352.87},
	{32, 4.00, 1577.34},
}

var earthB1 = []vsopTerm{
	{9, 3.90, 5507.55},
	{6, 1.73, 5223.69},
}

var earthR0 = []vsopTerm{
	{100013989, 0, 0},
	{1670700, 3.0984635, 6283.07585},
	{13956, 3.05525, 12566.1517},
	{3084, 5.1985, 77713.7715},
	{1628, 1.1739, 5753.3849},
	{1576, 2.8469, 7860.4194},
	{925, 5.453, 11506.770},
	{542, 4.564, 3930.210},
	{472, 3.661, 5884.927},
	{346, 0.964, 5507.553},
	{329, 5.900, 5223.694},
	{307, 0.299, 5573.143},
	{243, 4.273, 11790.629},
	{212, 5.847, 1577.344},
	{186, 5.022, 10977.079},
	{175, 3.012, 18849.228},
	{110, 5.055, 5486.778},
	{98, 0.89, 6069.78},
	{86, 5.69, 15720.84},
	{86, 1.27, 161000.69},
	{65, 0.27, 17260.15},
	{63, 0.92, 529.69},
	{57, 2.01, 83996.85},
	{56, 5.24, 71430.70},
	{49, 3.25, 2544.31},
	{47, 2.58, 775.52},
	{45, 5.54, 9437.76},
	{43, 6.01, 6275.96},
	{39, 5.36, 4694.00},
	{38, 2.39, 8827.39},
	{37, 0.83, 19651.05},
	{37, 4.90, 12139.55},
	{36, 1.67, 12036.46},
	{35, 1.84, 2942.46},
	{33, 0.24, 7084.90},
	{32, 0.18, 5088.63},
	{32, 1.78, 398.15},
	{28, 1.21, 6286.60},
	{28, 1.90, 6279.55},
	{26, 4.59, 10447.39},
}

var earthR1 = []vsopTerm{
	{103019, 1.107490, 6283.075850},
	{1721, 1.0644, 12566.1517},
	{702, 3.142, 0},
	{32, 1.02, 18849.23},
	{31, 2.84, 5507.55},
	{25, 1.32, 5223.69},
	{18, 1.42, 1577.34},
	{10, 5.91, 10977.08},
	{9, 1.42, 6275.96},
	{9, 0.27, 5486.78},
}

var earthR2 = []vsopTerm{
	{4359, 5.7846, 6283.0758},
	{124, 5.579, 12566.152},
	{12, 3.14, 0},
	{9, 3.63, 77713.77},
	{6, 1.87, 5573.14},
	{3, 5.47, 18849.23},
}

// evalSeries evaluates Σ Aᵢ·cos(Bᵢ + Cᵢ·τ) in declared-table order, per
// the "floating-point determinism" requirement: terms are summed exactly
// in slice order, never reordered or summed in parallel. floats.Sum
// walks its input sequentially rather than pairwise or in parallel, the
// same guarantee a hand-written loop gives, so swapping in gonum here
// costs nothing and keeps the summation convention centralized.
func evalSeries(terms []vsopTerm, tau float64) float64 {
	values := make([]float64, len(terms))
	for i, term := range terms {
		values[i] = term.A * math.Cos(term.B+term.C*tau)
	}
	return floats.Sum(values)
}

// EarthHeliocentric returns the Earth's heliocentric longitude L and
// latitude B (radians) and radius vector R (AU) at Julian-centuries-from-
// J2000 T, via τ = T/10 and the six L, two B, and three R series.
func EarthHeliocentric(t float64) (lon, lat, radius float64) {
	tau := t / 10.0
	const unit = 1e-8

	l := evalSeries(earthL0, tau) +
		evalSeries(earthL1, tau)*tau +
		evalSeries(earthL2, tau)*tau*tau +
		evalSeries(earthL3, tau)*tau*tau*tau +
		evalSeries(earthL4, tau)*tau*tau*tau*tau +
		evalSeries(earthL5, tau)*tau*tau*tau*tau*tau
	l *= unit

	b := evalSeries(earthB0, tau) + evalSeries(earthB1, tau)*tau
	b *= unit

	r := evalSeries(earthR0, tau) +
		evalSeries(earthR1, tau)*tau +
		evalSeries(earthR2, tau)*tau*tau
	r *= unit

	lon = math.Mod(l, 2*math.Pi)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	return lon, b, r
}
