// stats.go
package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// OutputStats は 1 つの出力（L_min など）の統計
type OutputStats struct {
	Key    string
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // N < 2 なら NaN
}

// Summarize は保存済みサンプルの各出力の統計を OutputKeys の順で返す。
// 計算に失敗したサンプルは数えない。
func Summarize(list []Sample) []OutputStats {
	out := make([]OutputStats, 0, len(OutputKeys))
	for _, k := range OutputKeys {
		xs := make([]float64, 0, len(list))
		for _, s := range list {
			if s.Err != nil {
				continue
			}
			v, _ := s.Comp.Value(k)
			xs = append(xs, v)
		}

		st := OutputStats{Key: k, N: len(xs), Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), StdDev: math.NaN()}
		if len(xs) > 0 {
			st.Min = floats.Min(xs)
			st.Max = floats.Max(xs)
			st.Mean = stat.Mean(xs, nil)
		}
		if len(xs) > 1 {
			st.StdDev = stat.StdDev(xs, nil)
		}
		out = append(out, st)
	}
	return out
}
