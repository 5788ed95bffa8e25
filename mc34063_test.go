package main

import (
	"errors"
	"math"
	"testing"
)

func assertClose(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	if math.Abs(got-want) > relTol*math.Abs(want) {
		t.Errorf("%s = %g, want %g (rel tol %g)", name, got, want, relTol)
	}
}

func TestCalcScenario(t *testing.T) {
	p := Params{Fs: 1500, VIn: 32.0, VOut: 12.1, VRip: 0.1, IOut: 0.33}
	c, err := Calc(p)
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}

	assertClose(t, "R_sc", c.Rsc, 0.3/0.66, 1e-12)
	assertClose(t, "R_sc", c.Rsc, 0.4545, 2e-4)
	if c.R1 != 1200 {
		t.Errorf("R_1 = %g, want 1200", c.R1)
	}
	assertClose(t, "R_2", c.R2, 8.68*1200, 1e-9)
	assertClose(t, "C_o", c.Co, 0.00055, 1e-9)

	// V_f = 0.4 V → t_on = 2.6539e-4 s
	assertClose(t, "C_t", c.Ct, 1.0615711252653928e-08, 1e-9)
	assertClose(t, "L_min", c.LMin, 0.007599884192240879, 1e-9)
}

func TestCalcDefaultParams(t *testing.T) {
	c, err := Calc(DefaultConfig().Params)
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}
	assertClose(t, "C_t", c.Ct, 1.5796178343949049e-10, 1e-9)
	assertClose(t, "L_min", c.LMin, 1.1368461686933025e-4, 1e-9)
	assertClose(t, "C_o", c.Co, 8.25e-6, 1e-9)
	assertClose(t, "R_2", c.R2, (12.0/1.25-1)*1200, 1e-12)
}

func TestCalcValidInputs(t *testing.T) {
	for _, fs := range []float64{1e3, 20e3, 100e3} {
		for _, vin := range []float64{10, 24, 40} {
			for _, vout := range []float64{1.25, 3.3, 5} {
				for _, iOut := range []float64{0.01, 0.33, 1.5} {
					p := Params{Fs: fs, VIn: vin, VOut: vout, VRip: 0.05, IOut: iOut}
					c, err := Calc(p)
					if err != nil {
						t.Fatalf("Calc(%+v): %v", p, err)
					}
					for _, k := range OutputKeys {
						v, _ := c.Value(k)
						if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
							t.Errorf("Calc(%+v): %s = %g", p, k, v)
						}
					}
				}
			}
		}
	}
}

func TestCalcDeterministic(t *testing.T) {
	p := Params{Fs: 47e3, VIn: 18, VOut: 5, VRip: 0.02, IOut: 0.5}
	a, err := Calc(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Calc(p)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Calc not deterministic: %+v != %+v", a, b)
	}
}

func TestCalcNegativeRatio(t *testing.T) {
	c, err := Calc(Params{Fs: 50e3, VIn: 5, VOut: 1.0, VRip: 0.05, IOut: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if c.R2 >= 0 {
		t.Errorf("R_2 = %g, want negative for v_out < 1.25 V", c.R2)
	}
}

func TestCalcInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero current", Params{Fs: 100e3, VIn: 32, VOut: 12, VRip: 0.1, IOut: 0}},
		{"zero frequency", Params{Fs: 0, VIn: 32, VOut: 12, VRip: 0.1, IOut: 0.33}},
		{"zero ripple", Params{Fs: 100e3, VIn: 32, VOut: 12, VRip: 0, IOut: 0.33}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calc(tt.p)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Calc(%+v) err = %v, want ErrInvalidInput", tt.p, err)
			}
		})
	}
}

func TestCalcLMinNotImplemented(t *testing.T) {
	inputs := []Params{
		{},
		DefaultConfig().Params,
		{Fs: 1500, VIn: 32, VOut: 12.1, VRip: 0.1, IOut: 0.33},
	}
	for _, p := range inputs {
		for _, l := range []float64{0, 100e-6, -1} {
			if _, err := CalcLMin(p, l); !errors.Is(err, ErrNotImplemented) {
				t.Errorf("CalcLMin(%+v, %g) err = %v, want ErrNotImplemented", p, l, err)
			}
		}
	}
}

func TestCalculateDispatch(t *testing.T) {
	p := DefaultConfig().Params

	want, _ := Calc(p)
	got, err := Calculate(ModeStd, p, 0)
	if err != nil || got != want {
		t.Errorf("Calculate(ModeStd) = %+v, %v; want %+v", got, err, want)
	}

	if _, err := Calculate(ModeLMin, p, 220e-6); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Calculate(ModeLMin) err = %v, want ErrNotImplemented", err)
	}

	if _, err := Calculate(Mode(9), p, 0); err == nil {
		t.Error("Calculate(unknown mode) err = nil")
	}
}

func TestComponentsValue(t *testing.T) {
	c := Components{Ct: 1, Rsc: 2, LMin: 3, Co: 4, R2: 5, R1: 6}
	want := map[string]float64{"C_t": 1, "R_sc": 2, "L_min": 3, "C_o": 4, "R_2": 5, "R_1": 6}
	for k, w := range want {
		if v, ok := c.Value(k); !ok || v != w {
			t.Errorf("Value(%q) = %g, %v; want %g", k, v, ok, w)
		}
	}
	if _, ok := c.Value("L"); ok {
		t.Error(`Value("L") ok = true`)
	}
}
