package bootstrap

import (
	"testing"
)

// V-speeds at sea level and at altitude, ground values from [PoLA] table
// 7.4.
func TestSolveSeaLevel(t *testing.T) {
	plate := plate71()
	w, h, oat := Of(2400, PoundForce), Of(0, Foot), Quantity{}
	c := Evaluate(plate, w, h, oat)
	vs := Solve(c, w, h, oat)

	mustPresent(t, vs.VM, "VM")
	if !withinRel(vs.VM.Value.In(Knot), 115.4, 1e-2) {
		t.Errorf("V_M: got %v kt, want ~115.4", vs.VM.Value.In(Knot))
	}

	mustPresent(t, vs.Vy, "Vy")
	if !withinRel(vs.Vy.Value.In(Knot), 75.961, 1e-2) {
		t.Errorf("Vy: got %v kt, want ~75.961", vs.Vy.Value.In(Knot))
	}

	mustPresent(t, vs.Vx, "Vx")
	if !withinRel(vs.Vx.Value.In(Knot), 63.28, 1e-2) {
		t.Errorf("Vx: got %v kt, want ~63.28", vs.Vx.Value.In(Knot))
	}
	mustPresent(t, vs.GammaX, "GammaX")
	if !withinRel(vs.GammaX.Value.In(Degree), 5.71, 2e-2) {
		t.Errorf("GammaX: got %v deg, want ~5.71", vs.GammaX.Value.In(Degree))
	}

	if !withinRel(vs.Vbg.In(Knot), 72.105, 1e-3) {
		t.Errorf("Vbg: got %v kt, want ~72.105", vs.Vbg.In(Knot))
	}
	if !withinRel(vs.GammaBg.In(Degree), -5.40, 2e-2) {
		t.Errorf("GammaBg: got %v deg, want ~-5.40", vs.GammaBg.In(Degree))
	}

	if !withinRel(vs.Vmd.In(Knot), 54.788, 1e-3) {
		t.Errorf("Vmd: got %v kt, want ~54.788", vs.Vmd.In(Knot))
	}
	if !withinRel(vs.SinkRateMd.In(FPM), -602.3, 2e-2) {
		t.Errorf("SinkRateMd: got %v ft/min, want ~-602.3", vs.SinkRateMd.In(FPM))
	}
}

func TestSolveAtAltitude(t *testing.T) {
	plate := plate71()
	w, h, oat := Of(1800, PoundForce), Of(8000, Foot), Quantity{}
	c := Evaluate(plate, w, h, oat)
	vs := Solve(c, w, h, oat)

	mustPresent(t, vs.VM, "VM")
	if !withinRel(vs.VM.Value.In(Knot), 100.4, 1e-2) {
		t.Errorf("V_M: got %v kt, want ~100.4", vs.VM.Value.In(Knot))
	}
	mustPresent(t, vs.Vy, "Vy")
	if !withinRel(vs.Vy.Value.In(Knot), 65.9, 1e-2) {
		t.Errorf("Vy: got %v kt, want ~65.9", vs.Vy.Value.In(Knot))
	}
	mustPresent(t, vs.Vx, "Vx")
	if !withinRel(vs.Vx.Value.In(Knot), 54.7, 1e-2) {
		t.Errorf("Vx: got %v kt, want ~54.7", vs.Vx.Value.In(Knot))
	}
	if !withinRel(vs.Vbg.In(Knot), 62.4, 1e-3) {
		t.Errorf("Vbg: got %v kt, want ~62.4", vs.Vbg.In(Knot))
	}
	if !withinRel(vs.Vmd.In(Knot), 47.4, 1e-2) {
		t.Errorf("Vmd: got %v kt, want ~47.4", vs.Vmd.In(Knot))
	}
}

// An operating point above the absolute ceiling has no positive-radicand
// solution for Vx/Vy; they must come back absent, never as an error.
// Built directly from a Composites value with R and the Vy radicand both
// out of range, so the absence is deterministic, rather than relying on
// finding a real (W, h) pair that happens to exceed plate71's ceiling.
func TestSolveAboveCeilingReportsAbsent(t *testing.T) {
	c := Composites{E: 10, F: -0.001, G: 0.002, H: 1e6, K: 0.001, Q: 1, R: 5, U: 3e6}
	w, h, oat := Of(2400, PoundForce), Of(0, Foot), Quantity{}
	vs := Solve(c, w, h, oat)

	if vs.Vx.Valid {
		t.Error("Vx should be absent when R is non-negative")
	}
	if vs.Vy.Valid {
		t.Error("Vy should be absent when its radicand is negative")
	}
	// Vbg/Vmd never depend on thrust and must always be present.
	if vs.Vbg.IsZero() {
		t.Error("Vbg should never be the zero Quantity")
	}
	if vs.Vmd.IsZero() {
		t.Error("Vmd should never be the zero Quantity")
	}
}

func mustPresent(t *testing.T, oq OptionalQuantity, name string) {
	t.Helper()
	if !oq.Valid {
		t.Fatalf("%s should be present at this operating point", name)
	}
}

func BenchmarkSolve(b *testing.B) {
	plate := plate71()
	w, h, oat := Of(2400, PoundForce), Of(0, Foot), Quantity{}
	c := Evaluate(plate, w, h, oat)
	for i := 0; i < b.N; i++ {
		Solve(c, w, h, oat)
	}
}
