package bootstrap

import "math"

const defaultC = 0.12

// Unitless is the Unit for dimensionless ratios (aspect ratio, C, C_D0, e,
// b, m, σ, φ), a scale-1 conversion that exists only so these values can
// flow through the same Quantity/In machinery as everything else.
var Unitless = linearUnit("", Dimensionless, 1)

// DataPlate holds the bootstrap coefficients derived once from a set of
// airframe constants and flight-test observations. It is immutable after
// BuildPlate returns it and safe to share across any number of concurrent
// queries.
type DataPlate struct {
	S  Quantity // wing area
	A  float64  // aspect ratio
	D  Quantity // propeller diameter
	M0 Quantity // rated propeller-shaft torque
	C  float64  // altitude-dropoff parameter

	CD0 float64 // zero-lift drag coefficient
	E   float64 // Oswald span efficiency
	B   float64 // dimensionless propeller drag-like term
	M   float64 // dimensionless propeller thrust-like term

	inputs AirframeInputs // retained so downstream queries can read config passthrough fields
}

// Config returns the configuration passthrough fields (velocity unit,
// ceiling, Vs0/Vne, CAS→IAS calibration) supplied on the AirframeInputs
// that built this plate. The core never interprets them.
func (p *DataPlate) Config() AirframeInputs { return p.inputs }

// BuildPlate derives a DataPlate from airframe constants and whatever
// flight-test records are supplied. At least one of Drag/Thrust, or full
// overrides, must be present for CD0/E/B/M to be determined.
func BuildPlate(in AirframeInputs) (*DataPlate, error) {
	if err := checkAirframeDims(in); err != nil {
		return nil, err
	}

	plate := &DataPlate{S: in.S, D: in.D, inputs: in}

	if in.S.In(SqFoot) <= 0 {
		return nil, errDomain("S", "wing area must be positive")
	}
	if in.D.In(Foot) <= 0 {
		return nil, errDomain("D", "propeller diameter must be positive")
	}

	switch {
	case !in.A.IsZero():
		plate.A = in.A.In(Unitless)
	case !in.B.IsZero():
		b := in.B.In(Foot)
		plate.A = b * b / in.S.In(SqFoot)
	default:
		return nil, errMissing("A/B", "supply either aspect ratio A or wing span B")
	}
	if plate.A <= 0 {
		return nil, errDomain("A", "aspect ratio must be positive")
	}

	switch {
	case !in.M0.IsZero():
		plate.M0 = in.M0
	case !in.P0.IsZero() && !in.N0.IsZero():
		p0 := in.P0.In(FtLbfPS)
		n0 := in.N0.In(RPS)
		if n0 <= 0 {
			return nil, errDomain("N0", "rated propeller speed must be positive")
		}
		plate.M0 = Of(p0/(2*math.Pi*n0), FtLbf)
	default:
		return nil, errMissing("M0/P0,N0", "supply either rated torque M0 or rated power P0 with rated speed N0")
	}
	if plate.M0.In(FtLbf) <= 0 {
		return nil, errDomain("M0", "rated torque must be positive")
	}

	plate.C = defaultC
	if !in.C.IsZero() {
		plate.C = in.C.In(Unitless)
	}
	if plate.C <= 0 || plate.C >= 1 {
		return nil, errDomain("C", "altitude-dropoff parameter must be in (0, 1)")
	}

	if in.Drag != nil {
		if err := checkDragTestDims(*in.Drag); err != nil {
			return nil, err
		}
		cd0, e, err := fitDragTest(*in.Drag, in.S, plate.A)
		if err != nil {
			return nil, err
		}
		plate.CD0, plate.E = cd0, e
	}

	if in.Thrust != nil {
		if in.Drag == nil && in.Overrides.CD0 == nil {
			return nil, errMissing("Thrust", "deriving b and m from a thrust test requires C_D0 and e, from a drag test or an override")
		}
		cd0, e := plate.CD0, plate.E
		if in.Overrides.CD0 != nil {
			cd0 = *in.Overrides.CD0
		}
		if in.Overrides.E != nil {
			e = *in.Overrides.E
		}
		if cd0 == 0 || e == 0 {
			return nil, errMissing("Thrust", "deriving b and m from a thrust test requires both C_D0 and e")
		}
		if err := checkThrustTestDims(*in.Thrust); err != nil {
			return nil, err
		}
		b, m, err := fitThrustTest(*in.Thrust, in.S, plate.A, plate.D, plate.M0, cd0, e, plate.C)
		if err != nil {
			return nil, err
		}
		plate.B, plate.M = b, m
	}

	// Overrides always win last, even over a coefficient a flight test
	// already derived.
	if in.Overrides.CD0 != nil {
		plate.CD0 = *in.Overrides.CD0
	}
	if in.Overrides.E != nil {
		plate.E = *in.Overrides.E
	}
	if in.Overrides.B != nil {
		plate.B = *in.Overrides.B
	}
	if in.Overrides.M != nil {
		plate.M = *in.Overrides.M
	}

	if plate.CD0 == 0 && plate.E == 0 && plate.B == 0 && plate.M == 0 {
		return nil, errMissing("Drag/Thrust/Overrides", "no flight test or override supplied any plate coefficient")
	}

	return plate, nil
}

// checkAirframeDims validates every AirframeInputs field against its
// expected dimension before BuildPlate lowers any of them with In(), so a
// caller-supplied value in the wrong dimension (e.g. a length passed as B
// but tagged Area) comes back as an ErrDimensionMismatch instead of a
// panic. Dt/Dh and the flight-test structs are checked separately, once
// BuildPlate knows which tests were actually supplied.
func checkAirframeDims(in AirframeInputs) error {
	checks := []struct {
		q     Quantity
		want  Dimension
		field string
	}{
		{in.S, Area, "S"},
		{in.B, Length, "B"},
		{in.A, Dimensionless, "A"},
		{in.D, Length, "D"},
		{in.M0, Torque, "M0"},
		{in.P0, Power, "P0"},
		{in.N0, AngularVelocity, "N0"},
		{in.C, Dimensionless, "C"},
	}
	for _, c := range checks {
		if err := checkDim(c.q, c.want, c.field); err != nil {
			return err
		}
	}
	return nil
}

func checkDragTestDims(d DragTest) error {
	checks := []struct {
		q     Quantity
		want  Dimension
		field string
	}{
		{d.W, Force, "DragTest.W"},
		{d.H, Length, "DragTest.H"},
		{d.T, Temperature, "DragTest.T"},
		{d.Dh, Length, "DragTest.Dh"},
		{d.Dt, Time, "DragTest.Dt"},
		{d.VCbg, Velocity, "DragTest.VCbg"},
	}
	for _, c := range checks {
		if err := checkDim(c.q, c.want, c.field); err != nil {
			return err
		}
	}
	return nil
}

func checkThrustTestDims(t ThrustTest) error {
	checks := []struct {
		q     Quantity
		want  Dimension
		field string
	}{
		{t.W, Force, "ThrustTest.W"},
		{t.H, Length, "ThrustTest.H"},
		{t.T, Temperature, "ThrustTest.T"},
		{t.VCx, Velocity, "ThrustTest.VCx"},
		{t.VCM, Velocity, "ThrustTest.VCM"},
	}
	for _, c := range checks {
		if err := checkDim(c.q, c.want, c.field); err != nil {
			return err
		}
	}
	return nil
}

// fitDragTest implements the PoLA Appendix F method, preferred over the
// simpler Bootstrap-1995 method.
func fitDragTest(d DragTest, s Quantity, a float64) (cd0, e float64, err error) {
	if d.W.In(PoundForce) <= 0 {
		return 0, 0, errDomain("DragTest.W", "weight must be positive")
	}
	if d.Dt.In(Second) <= 0 {
		return 0, 0, errDomain("DragTest.dt", "elapsed time must be positive")
	}

	sigma := RelativeDensity(d.H, d.T)
	rho := stdDensity * sigma
	dhTape := TapelineAltitude(d.Dh, d.H, d.T)
	vBg := TAS(d.VCbg, d.H, d.T)

	gammaBg, err := FlightPathAngle(vBg, dhTape, d.Dt)
	if err != nil {
		return 0, 0, err
	}
	gamma := gammaBg.In(Radian)
	if gamma <= 0 || gamma >= math.Pi/2 {
		return 0, 0, errDomain("gamma_bg", "best-glide flight-path angle must be in (0, pi/2)")
	}

	w := d.W.In(PoundForce)
	vBgFps := vBg.In(FPS)
	sFt2 := s.In(SqFoot)

	// [PoLA] eq 9.41, using +W: the book's printed −W is a sign error.
	cd0 = w * math.Sin(gamma) / (rho * sFt2 * vBgFps * vBgFps)
	if cd0 <= 0 {
		return 0, 0, errDomain("C_D0", "drag-test fit produced a non-positive C_D0")
	}
	tanGamma := math.Tan(gamma)
	e = 4 * cd0 / (math.Pi * a * tanGamma * tanGamma)
	return cd0, e, nil
}

// fitThrustTest implements the bootstrap-1995 / PoLA eq 7.1/7.1a method,
// requiring C_D0 and e already known.
func fitThrustTest(t ThrustTest, s Quantity, a float64, d, m0 Quantity, cd0, e, c float64) (b, m float64, err error) {
	if t.W.In(PoundForce) <= 0 {
		return 0, 0, errDomain("ThrustTest.W", "weight must be positive")
	}
	rho := Density(t.H, t.T).In(SlugFt3)
	if rho <= 0 {
		return 0, 0, errDomain("rho", "density must be positive")
	}
	sigma := RelativeDensity(t.H, t.T)
	phi := DropoffFactor(sigma, c)

	vx := TAS(t.VCx, t.H, t.T).In(FPS)
	vM := TAS(t.VCM, t.H, t.T).In(FPS)
	if vx <= 0 || vM <= 0 {
		return 0, 0, errDomain("ThrustTest", "true airspeeds must be positive")
	}

	w := t.W.In(PoundForce)
	dFt := d.In(Foot)
	sFt2 := s.In(SqFoot)
	m0FtLbf := m0.In(FtLbf)

	b = (sFt2 * cd0) / (2 * dFt * dFt)
	b -= 2 * w * w / (rho * rho * dFt * dFt * sFt2 * math.Pi * e * a * vx * vx * vx * vx)

	m = (dFt * w * w) / (math.Pi * m0FtLbf * phi * rho * sFt2 * math.Pi * e * a)
	m *= 1/(vM*vM) + (vM*vM)/(vx*vx*vx*vx)

	return b, m, nil
}
