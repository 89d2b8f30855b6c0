package bootstrap

import (
	"testing"

	"github.com/gonum/floats"
)

// plate71 reproduces [PoLA] table 7.1's nominal data plate, used directly
// (bypassing flight-test derivation) so the composites/performance tests
// aren't compounding drag/thrust-fit error on top of rounding error.
func plate71() *DataPlate {
	cd0, e, b, m := 0.037, 0.72, -0.0564, 1.70
	plate, err := BuildPlate(AirframeInputs{
		S:         Of(174, SqFoot),
		A:         Of(7.38, Unitless),
		D:         Of(6.25, Foot),
		M0:        Of(311.2, FtLbf),
		C:         Of(0.12, Unitless),
		Overrides: PlateOverrides{CD0: &cd0, E: &e, B: &b, M: &m},
	})
	if err != nil {
		panic("plate71: " + err.Error())
	}
	return plate
}

func withinRel(got, want, rel float64) bool {
	return floats.EqualWithinAbs(got, want, rel*absf(want))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Composites at sea level, ground values from [PoLA] table 7.1.
func TestCompositesSeaLevel(t *testing.T) {
	plate := plate71()
	w, h, oat := Of(2400, PoundForce), Of(0, Foot), Quantity{}

	if sigma := RelativeDensity(h, oat); !floats.EqualWithinAbs(sigma, 1, 1e-9) {
		t.Fatalf("sigma at sea level should be 1, got %v", sigma)
	}

	c := Evaluate(plate, w, h, oat)
	cases := []struct {
		name string
		got  float64
		want float64
		rel  float64
	}{
		{"E", c.E, 531.85, 1e-2},
		{"F", c.F, -0.0052214, 1e-2},
		{"G", c.G, 0.0076290, 1e-2},
		{"H", c.H, 1673463, 1e-2},
		{"K", c.K, -0.012850, 1e-2},
		{"Q", c.Q, -41389, 1e-2},
		{"R", c.R, -1.3023e8, 1e-2},
		{"U", c.U, 2.1936e8, 1e-2},
	}
	for _, tc := range cases {
		if !withinRel(tc.got, tc.want, tc.rel) {
			t.Errorf("composite %s: got %v, want %v (rel %v)", tc.name, tc.got, tc.want, tc.rel)
		}
	}
}

// Composites at density altitude: sigma and phi both scale every
// composite relative to the sea-level case ([PoLA] ch. 7, table 7.1 plate
// evaluated at W=1800 lbf, h=8000 ft).
func TestCompositesAtAltitude(t *testing.T) {
	plate := plate71()
	w, h, oat := Of(1800, PoundForce), Of(8000, Foot), Quantity{}

	if sigma := RelativeDensity(h, oat); !withinRel(sigma, 0.7860, 1e-3) {
		t.Fatalf("sigma(8000 ft): got %v, want ~0.7860", sigma)
	}
	if phi := DropoffFactor(RelativeDensity(h, oat), plate.C); !withinRel(phi, 0.7568, 1e-3) {
		t.Fatalf("phi(8000 ft): got %v, want ~0.7568", phi)
	}

	c := Evaluate(plate, w, h, oat)
	cases := []struct {
		name string
		got  float64
		want float64
		rel  float64
	}{
		{"E", c.E, 402.53, 1e-2},
		{"F", c.F, -0.004104, 1e-2},
		{"G", c.G, 0.0059965, 1e-2},
		{"H", c.H, 1197581, 1e-2},
		{"K", c.K, -0.010114, 1e-2},
		{"Q", c.Q, -39800, 1e-2},
		{"R", c.R, -1.1841e8, 1e-2},
		{"U", c.U, 1.9971e8, 1e-2},
	}
	for _, tc := range cases {
		if !withinRel(tc.got, tc.want, tc.rel) {
			t.Errorf("composite %s: got %v, want %v (rel %v)", tc.name, tc.got, tc.want, tc.rel)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	plate := plate71()
	w, h, oat := Of(2400, PoundForce), Of(0, Foot), Quantity{}
	for i := 0; i < b.N; i++ {
		Evaluate(plate, w, h, oat)
	}
}
