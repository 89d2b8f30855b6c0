package bootstrap

import "math"

// Performance bundles the thrust, drag, power, and climb/glide outputs
// of a point performance evaluation. The evaluator does not clamp or
// validate V against stall/Vne; callers that want that do it themselves
// against AirframeInputs.Vs0/Vne.
type Performance struct {
	Thrust          Quantity // T
	PowerAvailable  Quantity // P_av
	ParasiteDrag    Quantity // Dp
	InducedDrag     Quantity // Di
	Drag            Quantity // D
	PowerRequired   Quantity // P_re
	PowerExcess     Quantity // P_xs
	ThrustExcess    Quantity // T_xs
	RateOfClimb     Quantity // ROC
	FlightPathAngle Quantity // γ
}

// EvaluateAt computes Performance at calibrated airspeed v, weight w,
// pressure altitude h, and outside air temperature t. V-speeds are
// reported as CAS, so this is the entry point callers evaluating
// performance at a V-speed use; EvaluateAtTAS is for callers that already
// have a true airspeed.
func EvaluateAt(c Composites, v, w, h, t Quantity) Performance {
	vTas := TAS(v, h, t)
	return evaluateTAS(c, vTas.In(FPS), w)
}

// EvaluateAtTAS computes Performance the same way as EvaluateAt but takes
// v already expressed as true airspeed, skipping the CAS→TAS conversion.
func EvaluateAtTAS(c Composites, vTas, w Quantity) Performance {
	return evaluateTAS(c, vTas.In(FPS), w)
}

func evaluateTAS(c Composites, vFps float64, w Quantity) Performance {
	wLbf := w.In(PoundForce)
	v2 := vFps * vFps

	thrust := c.E + c.F*v2
	dp := c.G * v2
	di := c.H / v2
	drag := dp + di
	pAv := thrust * vFps
	pRe := drag * vFps
	pXs := pAv - pRe
	tXs := thrust - drag
	roc := pXs / wLbf
	gamma := math.Asin(clamp(tXs/wLbf, -1, 1))

	return Performance{
		Thrust:          Of(thrust, PoundForce),
		PowerAvailable:  Of(pAv, FtLbfPS),
		ParasiteDrag:    Of(dp, PoundForce),
		InducedDrag:     Of(di, PoundForce),
		Drag:            Of(drag, PoundForce),
		PowerRequired:   Of(pRe, FtLbfPS),
		PowerExcess:     Of(pXs, FtLbfPS),
		ThrustExcess:    Of(tXs, PoundForce),
		RateOfClimb:     Of(roc, FPS),
		FlightPathAngle: Of(gamma, Radian),
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
