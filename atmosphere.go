package bootstrap

import "math"

// 1962 US Standard Atmosphere constants.
const (
	stdTemperatureF = 59.0    // T0, °F at sea level
	stdPressureInHg = 29.921  // p0, standard sea-level pressure, informational only
	stdDensity      = 0.00237 // ρ0, slug/ft³ at sea level, the rounded value [PoLA] uses throughout its worked examples
	lapseRateFperFt = 0.001981 * 9.0 / 5.0 // α, °R per ft (0.001981 K/ft; °R and K share a scale)
)

// StandardTemperature returns the standard-atmosphere temperature at
// pressure altitude h: T_std(h) = T0 − α·h.
func StandardTemperature(h Quantity) Quantity {
	return Of(stdTemperatureF-lapseRateFperFt*h.In(Foot), Fahrenheit)
}

// RelativeDensity returns σ = ρ/ρ0 at pressure altitude h and, optionally,
// outside air temperature T. Pass the zero Quantity for T to use the pure
// pressure-altitude model.
func RelativeDensity(h, t Quantity) float64 {
	hFt := h.In(Foot)
	if t.IsZero() {
		return math.Pow(1-hFt/145457.0, 4.25635)
	}
	return (518.7 / (t.In(Fahrenheit) + 459.7)) * (1 - 6.8752e-6*hFt)
}

// Density returns ρ = ρ0·σ(h, t).
func Density(h, t Quantity) Quantity {
	return Of(stdDensity*RelativeDensity(h, t), SlugFt3)
}

// DropoffFactor returns φ = (σ − C)/(1 − C), the engine-power altitude
// dropoff factor, for the given relative density and dropoff parameter C.
func DropoffFactor(sigma, c float64) float64 {
	return (sigma - c) / (1 - c)
}

// TAS converts a calibrated airspeed to true airspeed at (h, t).
func TAS(vCas, h, t Quantity) Quantity {
	sigma := RelativeDensity(h, t)
	return Of(vCas.In(Knot)/math.Sqrt(sigma), Knot)
}

// CAS converts a true airspeed to calibrated airspeed at (h, t).
func CAS(vTas, h, t Quantity) Quantity {
	sigma := RelativeDensity(h, t)
	return Of(vTas.In(Knot)*math.Sqrt(sigma), Knot)
}

// TapelineAltitude corrects an indicated altitude change to a geometric
// (tapeline) altitude change, given the average pressure altitude h and OAT
// t at which the change was flown: dh_tape = dh_indicated · T / T_std(h).
func TapelineAltitude(dhIndicated, h, t Quantity) Quantity {
	tStdR := StandardTemperature(h).In(Fahrenheit) + 459.7
	tR := t.In(Fahrenheit) + 459.7
	return Of(dhIndicated.In(Foot)*tR/tStdR, Foot)
}

// FlightPathAngle returns γ = asin(dh / (V·dt)) for true airspeed V,
// tapeline altitude change dh, and elapsed time dt.
func FlightPathAngle(v, dh, dt Quantity) (Quantity, error) {
	dtS := dt.In(Second)
	if dtS <= 0 {
		return Quantity{}, errDomain("dt", "elapsed time must be positive")
	}
	vFps := v.In(FPS)
	if vFps == 0 {
		return Quantity{}, errDomain("V", "airspeed must be nonzero to compute a flight-path angle")
	}
	x := dh.In(Foot) / (vFps * dtS)
	if x < -1 || x > 1 {
		return Quantity{}, errDomain("gamma", "flight-path angle radicand out of [-1, 1]")
	}
	return Of(math.Asin(x), Radian), nil
}
