package astro

import "math"

const arcsecToRad = math.Pi / (180 * 3600)

// ApparentSolarLongitude returns the Sun's apparent geocentric ecliptic
// longitude, in radians reduced to [0, 2π), at Julian centuries from
// J2000 T. It composes the heliocentric VSOP87 Earth series, the
// geocentric 180° flip, the FK5 frame correction, annual aberration, and
// IAU-1980 nutation in longitude, in that order, exactly as spec.md 4.1
// describes.
func ApparentSolarLongitude(t float64) float64 {
	helioLon, helioLat, radius := EarthHeliocentric(t)

	geocentric := helioLon + math.Pi // +180°

	fk5 := fk5Correction(geocentric, helioLat, t)
	aberration := (-20.4898 / radius) * arcsecToRad
	nutation := NutationInLongitude(t)

	apparent := geocentric + fk5 + aberration + nutation
	apparent = math.Mod(apparent, 2*math.Pi)
	if apparent < 0 {
		apparent += 2 * math.Pi
	}
	return apparent
}

// fk5Correction returns Δλ, in radians, converting a VSOP87-frame
// geocentric longitude/latitude to the FK5 reference frame, per Meeus
// Astronomical Algorithms ch. 25/26: λ' = λ − 1.397T − 0.00031T² (degrees),
// Δλ = −0.09033″ + 0.03916″(cos λ' + sin λ′) tan β.
func fk5Correction(lon, lat, t float64) float64 {
	lonDeg := lon*180/math.Pi - 1.397*t - 0.00031*t*t
	lonPrime := lonDeg * math.Pi / 180
	deltaArcsec := -0.09033 + 0.03916*(math.Cos(lonPrime)+math.Sin(lonPrime))*math.Tan(lat)
	return deltaArcsec * arcsecToRad
}
