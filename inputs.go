package bootstrap

// CalibrationFunc is an optional monotone CAS→IAS mapping applied only at
// the external boundary; the engine's internal computation works in CAS
// throughout and never calls this itself.
type CalibrationFunc func(Quantity) Quantity

// AirframeInputs are the constants describing one aircraft plus whatever
// flight-test observations are available to derive its data plate.
// One of {B, A} and one of {M0, (P0 and N0)} must be set; BuildPlate
// reports ErrMissingInput if either pair is missing entirely. If both
// members of a pair are set, A and M0 are used and B or (P0, N0) ignored.
type AirframeInputs struct {
	S Quantity // wing area
	B Quantity // wing span; leave zero if A is given directly
	A Quantity // aspect ratio (dimensionless); leave zero if B is given
	D Quantity // propeller diameter

	M0 Quantity // rated propeller-shaft torque; leave zero if P0/N0 given
	P0 Quantity // rated power; leave zero if M0 given directly
	N0 Quantity // rated propeller-shaft angular speed; leave zero if M0 given directly

	C Quantity // altitude-dropoff parameter; zero means "use the default 0.12"

	Drag   *DragTest
	Thrust *ThrustTest

	// Overrides replace the corresponding derived plate coefficient.
	// Supplying an override alongside the flight test that would
	// otherwise derive it is not an error: the override wins.
	Overrides PlateOverrides

	// Configuration passthrough fields. The core never reads these
	// itself; they ride along on the plate for callers to consult.
	VelocityUnit Unit
	Ceiling      Quantity
	Vs0          Quantity
	Vne          Quantity
	Calibrate    CalibrationFunc
}

// PlateOverrides lets a caller supply C_D0, e, b, or m directly instead of
// deriving them from flight-test data, primarily for testing/mocking
// against a known data plate. A nil pointer means "not overridden"; derive
// it normally if possible.
type PlateOverrides struct {
	CD0 *float64
	E   *float64
	B   *float64
	M   *float64
}

// DragTest is a steady best-glide observation used to derive C_D0 and e.
type DragTest struct {
	W    Quantity // weight at the time of the test
	H    Quantity // pressure altitude
	T    Quantity // outside air temperature
	Dh   Quantity // indicated altitude loss over the glide
	Dt   Quantity // elapsed time
	VCbg Quantity // calibrated best-glide airspeed flown
}

// ThrustTest is a steady best-angle-of-climb observation at full throttle,
// used (together with C_D0 and e) to derive b and m.
type ThrustTest struct {
	W   Quantity // weight at the time of the test
	H   Quantity // pressure altitude
	T   Quantity // outside air temperature
	VCx Quantity // calibrated best-angle-of-climb airspeed flown
	VCM Quantity // calibrated max-level airspeed at the test altitude
}
