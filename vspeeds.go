package bootstrap

import "math"

// OptionalQuantity is a Quantity that may be absent. If Vy, VM, or Vx is
// not real at a given weight/altitude/temperature, the operating point is
// at or above the absolute ceiling for that V-speed, and Solve reports it
// as absent rather than as an error.
type OptionalQuantity struct {
	Value Quantity
	Valid bool
}

func present(q Quantity) OptionalQuantity { return OptionalQuantity{Value: q, Valid: true} }
func absent() OptionalQuantity            { return OptionalQuantity{} }

// VSpeeds are the characteristic calibrated airspeeds derived from a set
// of Composites. Vbg and Vmd depend only on U, which is always positive,
// so they are never absent; Vx, Vy, and VM are absent at or above the
// absolute ceiling.
type VSpeeds struct {
	Vx, Vy, VM OptionalQuantity
	Vbg, Vmd   Quantity

	// GammaX is the flight-path angle at Vx, computed in closed form
	// without needing a separate performance evaluation ([PoLA] eq 7.44).
	// Absent under the same condition as Vx.
	GammaX OptionalQuantity
	// GammaBg is the best-glide (minimum) descent angle, closed form
	// ([PoLA] eq 7.51).
	GammaBg Quantity
	// SinkRateMd is the power-off rate of sink at Vmd, distinct from
	// Performance.RateOfClimb at V = Vmd under power.
	SinkRateMd Quantity
}

// Solve derives the V-speeds from composites at weight w, reporting each
// calibrated airspeed via CAS(√v, h, t).
func Solve(c Composites, w, h, t Quantity) VSpeeds {
	var vs VSpeeds

	if c.R < 0 {
		vx2 := math.Sqrt(-c.R)
		vs.Vx = present(toCAS(vx2, h, t))
	}

	if rad := c.Q*c.Q/36 - c.R/3; rad >= 0 {
		vy2 := -c.Q/6 + math.Sqrt(rad)
		if vy2 > 0 {
			vs.Vy = present(toCAS(vy2, h, t))
		}
	}

	if rad := c.Q*c.Q/4 + c.R; rad >= 0 {
		vm2 := -c.Q/2 + math.Sqrt(rad)
		if vm2 > 0 {
			vs.VM = present(toCAS(vm2, h, t))
		}
	}

	vs.Vbg = toCAS(math.Sqrt(c.U), h, t)
	vs.Vmd = toCAS(math.Sqrt(c.U/3), h, t)

	wLbf := w.In(PoundForce)
	if rad := -c.K * c.H; rad >= 0 {
		x := (c.E - 2*math.Sqrt(rad)) / wLbf
		if x >= -1 && x <= 1 {
			vs.GammaX = present(Of(math.Asin(x), Radian))
		}
	}

	if rad := c.G * c.H; rad >= 0 {
		x := 2 * math.Sqrt(rad) / wLbf
		if x >= -1 && x <= 1 {
			vs.GammaBg = Of(-math.Asin(x), Radian)
		}
	}

	vmdFps := math.Sqrt(math.Sqrt(c.U / 3))
	sinkFps := (-c.G*vmdFps*vmdFps*vmdFps - c.H/vmdFps) / wLbf
	vs.SinkRateMd = Of(sinkFps*60, FPM)

	return vs
}

// toCAS converts v = V² (ft²/s², true airspeed) to a calibrated airspeed.
func toCAS(v2 float64, h, t Quantity) Quantity {
	vTas := Of(math.Sqrt(v2), FPS)
	return CAS(vTas, h, t)
}
