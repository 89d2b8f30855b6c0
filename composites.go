package bootstrap

import "math"

// Composites bundles the eight scalars the V-speed solver and performance
// evaluator are built from. They are computed fresh for every (W, h, T)
// query rather than cached against a reference weight, so varying W never
// risks reading a stale cross product.
type Composites struct {
	E, F, G, H float64
	K, Q, R, U float64
}

// Evaluate computes the composites at the given weight, pressure altitude,
// and outside air temperature.
func Evaluate(plate *DataPlate, w, h, t Quantity) Composites {
	sigma := RelativeDensity(h, t)
	phi := DropoffFactor(sigma, plate.C)

	dFt := plate.D.In(Foot)
	m0 := plate.M0.In(FtLbf)
	sFt2 := plate.S.In(SqFoot)
	wLbf := w.In(PoundForce)

	e0 := plate.M * m0 * 2 * math.Pi / dFt
	f0 := stdDensity * dFt * dFt * plate.B
	g0 := stdDensity * sFt2 * plate.CD0 / 2
	h0 := 2 * wLbf * wLbf / (stdDensity * sFt2 * math.Pi * plate.E * plate.A)
	k0 := f0 - g0
	q0 := e0 / k0
	r0 := h0 / k0
	u0 := h0 / g0

	return Composites{
		E: phi * e0,
		F: sigma * f0,
		G: sigma * g0,
		H: h0 / sigma,
		K: sigma * k0,
		Q: (phi / sigma) * q0,
		R: r0 / (sigma * sigma),
		U: u0 / (sigma * sigma),
	}
}
