// sweep.go
// 動作点スイープ（ランダム探索）
// - 線形一様 / 対数一様で各入力条件をサンプリング
// - Calculate（cfg.Mode）が成功し、YKey の出力が YRange に入れば OK、入らなければ NG
// - OK/NG をそれぞれ最大 N 件保存（保存枠が埋まっても探索は継続）
// - 終了条件：繰り返し回数到達 or ctx のキャンセル（Ctrl-C）

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

type Scale int

const (
	Linear Scale = iota
	Log
)

type ParamSpec struct {
	Key          string
	Label        string
	Min          float64
	Max          float64
	Scale        Scale
	DisplayScale float64 // 表示用の倍率（保存は元単位）
}

type Sample struct {
	Values map[string]float64
	Comp   Components
	Err    error
	Y      float64
	OK     bool
}

type Range struct {
	Min float64
	Max float64
}

// SweepResult はスイープ 1 回分の結果
type SweepResult struct {
	RunID  string
	Seed   int64
	Order  []string
	OK     []Sample
	NG     []Sample
	Total  int64
	OKHits int64
	NGHits int64
}

func inRange(x float64, r Range) bool {
	return r.Min <= x && x <= r.Max
}

// Draw は p の範囲から 1 点引く（Log は対数一様）
func (p ParamSpec) Draw(rng *rand.Rand) (float64, error) {
	lo, hi := p.Min, p.Max
	if hi < lo {
		return 0, fmt.Errorf("param %s: Max < Min", p.Key)
	}
	switch p.Scale {
	case Linear:
	case Log:
		if lo <= 0 || hi <= 0 {
			return 0, fmt.Errorf("param %s: log sampling requires Min>0 and Max>0 (got Min=%g Max=%g)", p.Key, lo, hi)
		}
		lo, hi = math.Log(lo), math.Log(hi)
	default:
		return 0, fmt.Errorf("param %s: unknown scale %d", p.Key, p.Scale)
	}

	v := lo + rng.Float64()*(hi-lo)
	if p.Scale == Log {
		v = math.Exp(v)
	}
	return v, nil
}

// Evaluate は 1 点を cfg.Mode で計算し、cfg.YKey の出力が cfg.YRange に入るかで OK/NG を決める
func Evaluate(cfg Config, vals map[string]float64) Sample {
	s := Sample{Values: vals, Y: math.NaN()}
	c, err := Calculate(cfg.Mode, ParamsFrom(vals), cfg.LMin)
	if err != nil {
		s.Err = err
		return s
	}
	s.Comp = c
	y, _ := c.Value(cfg.YKey)
	s.Y = y
	s.OK = !math.IsNaN(y) && !math.IsInf(y, 0) && inRange(y, cfg.YRange)
	return s
}

// RunSweep は cfg.Sweep の範囲で Evaluate を繰り返す。
// progress が nil でなければ PrintEvery ごとに進捗を書く。
func RunSweep(ctx context.Context, cfg Config, progress io.Writer) (SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return SweepResult{}, err
	}

	order := make([]string, 0, len(cfg.Sweep))
	for _, p := range cfg.Sweep {
		order = append(order, p.Key)
	}

	res := SweepResult{
		RunID: uuid.NewString(),
		Seed:  cfg.Seed,
		Order: order,
		OK:    make([]Sample, 0, max(cfg.MaxOKSave, 0)),
		NG:    make([]Sample, 0, max(cfg.MaxNGSave, 0)),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	// 進捗表示（固定幅・行の残りを消す）
	printProgress := func() {
		if progress == nil {
			return
		}
		var pct float64
		if cfg.MaxIters > 0 {
			pct = float64(res.Total) / float64(cfg.MaxIters) * 100.0
		}
		fmt.Fprintf(progress,
			"\riter=%12d (%6.2f%%)  OK_hits=%12d  NG_hits=%12d                ",
			res.Total, pct, res.OKHits, res.NGHits,
		)
	}

	for res.Total < cfg.MaxIters {
		select {
		case <-ctx.Done():
			printProgress()
			return res, nil
		default:
		}

		vals := make(map[string]float64, len(cfg.Sweep))
		for _, p := range cfg.Sweep {
			v, err := p.Draw(rng)
			if err != nil {
				return res, err
			}
			vals[p.Key] = v
		}

		s := Evaluate(cfg, vals)

		// 保存は「枠が空いているときだけ」。枠が埋まっても探索は続行。
		if s.OK {
			res.OKHits++
			if len(res.OK) < cfg.MaxOKSave {
				res.OK = append(res.OK, s)
			}
		} else {
			res.NGHits++
			if len(res.NG) < cfg.MaxNGSave {
				res.NG = append(res.NG, s)
			}
		}

		res.Total++
		if cfg.PrintEvery > 0 && res.Total%cfg.PrintEvery == 0 {
			printProgress()
		}
	}

	printProgress()
	return res, nil
}
