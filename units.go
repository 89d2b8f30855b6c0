package bootstrap

import (
	"fmt"
	"math"
)

// Dimension tags the physical kind of a Quantity. Expressing a Quantity in
// a unit of another dimension is rejected (In and Lift panic) rather than
// silently producing a wrong number.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length                  // canonical: foot
	Area                    // canonical: square foot
	Mass                    // canonical: slug
	Force                   // canonical: pound-force
	Time                    // canonical: second
	Velocity                // canonical: foot/second
	AngularVelocity         // canonical: revolution/second
	Power                   // canonical: foot-pound-force/second
	Torque                  // canonical: foot-pound-force
	DensityDim              // canonical: slug/cubic foot
	Temperature             // canonical: degree Fahrenheit
	Angle                   // canonical: radian
)

func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case Length:
		return "length"
	case Area:
		return "area"
	case Mass:
		return "mass"
	case Force:
		return "force"
	case Time:
		return "time"
	case Velocity:
		return "velocity"
	case AngularVelocity:
		return "angular velocity"
	case Power:
		return "power"
	case Torque:
		return "torque"
	case DensityDim:
		return "density"
	case Temperature:
		return "temperature"
	case Angle:
		return "angle"
	default:
		return "unknown dimension"
	}
}

// Quantity is a dimensioned scalar. Its magnitude is always stored in the
// canonical British-engineering unit for its Dimension (see the constants
// above); conversion to and from any other unit happens only at Of/In.
type Quantity struct {
	mag float64
	dim Dimension
}

// Unit converts a magnitude to and from the canonical representation of
// its Dimension. Temperature units need an additive offset in addition to
// a scale factor, so both directions are plain functions rather than a
// single scale factor.
type Unit struct {
	Name        string
	Dim         Dimension
	toCanonical func(float64) float64
	fromCanonical func(float64) float64
}

func linearUnit(name string, dim Dimension, toCanonicalFactor float64) Unit {
	return Unit{
		Name:          name,
		Dim:           dim,
		toCanonical:   func(x float64) float64 { return x * toCanonicalFactor },
		fromCanonical: func(x float64) float64 { return x / toCanonicalFactor },
	}
}

var (
	Foot   = linearUnit("ft", Length, 1)
	Meter  = linearUnit("m", Length, 3.280839895)
	NM     = linearUnit("nm", Length, 6076.11549)

	SqFoot = linearUnit("ft2", Area, 1)

	Slug      = linearUnit("slug", Mass, 1)
	PoundMass = linearUnit("lbm", Mass, 1.0/32.174049)

	PoundForce = linearUnit("lbf", Force, 1)

	Second = linearUnit("s", Time, 1)
	Minute = linearUnit("min", Time, 60)
	Hour   = linearUnit("hr", Time, 3600)

	FPS  = linearUnit("ft/s", Velocity, 1)
	FPM  = linearUnit("ft/min", Velocity, 1.0/60)
	Knot = linearUnit("kt", Velocity, 1.687809857)
	// CAS/TAS are the same physical dimension; these are unit aliases so a
	// call site can document which airspeed convention a value carries.
	KnotCAS = linearUnit("kcas", Velocity, 1.687809857)
	KnotTAS = linearUnit("ktas", Velocity, 1.687809857)
	MPH     = linearUnit("mph", Velocity, 1.466666667)

	RPS = linearUnit("rps", AngularVelocity, 1)
	RPM = linearUnit("rpm", AngularVelocity, 1.0/60)

	HP      = linearUnit("hp", Power, 550)
	FtLbfPS = linearUnit("ftlbf/s", Power, 1)

	FtLbf = linearUnit("ftlbf", Torque, 1)

	SlugFt3 = linearUnit("slug/ft3", DensityDim, 1)

	Radian = linearUnit("rad", Angle, 1)
	Degree = linearUnit("deg", Angle, math.Pi/180)

	Fahrenheit = Unit{
		Name: "degF", Dim: Temperature,
		toCanonical:   func(x float64) float64 { return x },
		fromCanonical: func(x float64) float64 { return x },
	}
	Rankine = Unit{
		Name: "degR", Dim: Temperature,
		toCanonical:   func(x float64) float64 { return x - 459.67 },
		fromCanonical: func(x float64) float64 { return x + 459.67 },
	}
	Celsius = Unit{
		Name: "degC", Dim: Temperature,
		toCanonical:   func(x float64) float64 { return x*9.0/5.0 + 32 },
		fromCanonical: func(x float64) float64 { return (x - 32) * 5.0 / 9.0 },
	}
	Kelvin = Unit{
		Name: "degK", Dim: Temperature,
		toCanonical:   func(x float64) float64 { return (x-273.15)*9.0/5.0 + 32 },
		fromCanonical: func(x float64) float64 { return (x-32)*5.0/9.0 + 273.15 },
	}
)

// Of attaches a Dimension to a raw magnitude expressed in unit u.
func Of(value float64, u Unit) Quantity {
	return Quantity{mag: u.toCanonical(value), dim: u.Dim}
}

// In lowers a Quantity to its magnitude expressed in unit u. Panics on a
// dimension mismatch. In is an internal conversion the package applies to
// values it already trusts, the same contract as the book's PoLA formulas,
// which are only ever evaluated with consistent units. Public entry points
// that accept caller-supplied Quantity values (BuildPlate and its flight
// tests) validate dimensions themselves with checkDim before ever calling
// In, so a caller mistake surfaces as an ErrDimensionMismatch, not a panic.
func (q Quantity) In(u Unit) float64 {
	if q.dim != u.Dim && !(q.mag == 0 && q.dim == Dimensionless) {
		panic(fmt.Sprintf("bootstrap: cannot express a %s quantity in %s (dimension %s)", q.dim, u.Name, u.Dim))
	}
	return u.fromCanonical(q.mag)
}

// Raw returns the magnitude already expressed in the canonical British
// engineering unit for its dimension, for callers that want to work in
// implicit British units directly.
func (q Quantity) Raw() float64 { return q.mag }

// Dim reports the Quantity's physical dimension.
func (q Quantity) Dim() Dimension { return q.dim }

// IsZero reports whether q is the untyped zero value, used at input
// boundaries to detect an omitted optional field.
func (q Quantity) IsZero() bool { return q.mag == 0 && q.dim == Dimensionless }

// checkDim reports an ErrDimensionMismatch if q is supplied (non-zero) with
// a dimension other than want. The zero value always passes; callers treat
// it as "field omitted" through their own missing-input checks, so it is
// never a dimension error in its own right.
func checkDim(q Quantity, want Dimension, field string) error {
	if q.IsZero() || q.dim == want {
		return nil
	}
	return errDimension(field, want, q.dim)
}

// Lift attaches u's dimension to x if x is the untyped zero value;
// otherwise it returns x unchanged after checking the dimension matches u.
func Lift(x Quantity, u Unit) Quantity {
	if x.IsZero() {
		return Quantity{mag: 0, dim: u.Dim}
	}
	if x.dim != u.Dim {
		panic(fmt.Sprintf("bootstrap: expected a %s quantity, got %s", u.Dim, x.dim))
	}
	return x
}
