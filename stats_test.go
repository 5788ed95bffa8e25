package main

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	list := []Sample{
		{Comp: Components{LMin: 1, Ct: 10}},
		{Comp: Components{LMin: 2, Ct: 10}},
		{Comp: Components{LMin: 3, Ct: 10}},
		{Comp: Components{LMin: 100}, Err: ErrInvalidInput},
	}
	stats := Summarize(list)
	if len(stats) != len(OutputKeys) {
		t.Fatalf("len = %d, want %d", len(stats), len(OutputKeys))
	}

	byKey := map[string]OutputStats{}
	for i, st := range stats {
		if st.Key != OutputKeys[i] {
			t.Errorf("stats[%d].Key = %q, want %q", i, st.Key, OutputKeys[i])
		}
		byKey[st.Key] = st
	}

	l := byKey["L_min"]
	if l.N != 3 || l.Min != 1 || l.Max != 3 || l.Mean != 2 {
		t.Errorf("L_min stats = %+v", l)
	}
	// 不偏標準偏差
	if math.Abs(l.StdDev-1) > 1e-12 {
		t.Errorf("L_min std = %g, want 1", l.StdDev)
	}

	c := byKey["C_t"]
	if c.Mean != 10 || c.StdDev != 0 {
		t.Errorf("C_t stats = %+v", c)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	for _, st := range Summarize(nil) {
		if st.N != 0 || !math.IsNaN(st.Mean) || !math.IsNaN(st.Min) {
			t.Errorf("%s: %+v, want N=0 and NaN", st.Key, st)
		}
	}

	one := Summarize([]Sample{{Comp: Components{LMin: 5}}})
	if one[0].Mean != 5 || !math.IsNaN(one[0].StdDev) {
		t.Errorf("single sample: %+v", one[0])
	}
}
