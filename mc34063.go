// mc34063.go
// MC34063 降圧（step-down）回路の周辺部品の計算
// - データシートの設計式をそのまま順に評価する
// - V_f は vf.go のテーブルから推定
// - R_1 は 1.2 kΩ 固定（E 系列への丸めはしない）

package main

import (
	"errors"
	"fmt"
	"math"
)

const (
	VSat         = 1.0    // ダーリントン出力の飽和電圧 [V]
	VRef         = 1.25   // 基準電圧 [V]
	VSense       = 0.3    // 電流制限の検出電圧 [V]
	R1Nominal    = 1200.0 // 帰還抵抗（下側）[Ω]
	TimingFactor = 4.0e-5 // C_t = 4.0e-5 * t_on
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrInvalidInput   = errors.New("invalid input")
)

// Params は入力条件（呼び出し側が決める）
type Params struct {
	Fs   float64 // スイッチング周波数 [Hz]
	VIn  float64 // 入力電圧 [V]
	VOut float64 // 出力電圧 [V]
	VRip float64 // 出力リップル電圧（ピーク）[V]
	IOut float64 // 出力電流 [A]
}

// Components は周辺部品の値（SI 単位）
type Components struct {
	Ct   float64 // タイミングコンデンサ [F]
	Rsc  float64 // 電流検出抵抗 [Ω]
	LMin float64 // 最小インダクタンス [H]
	Co   float64 // 出力コンデンサ [F]
	R2   float64 // 帰還抵抗（上側）[Ω]
	R1   float64 // 帰還抵抗（下側）[Ω]
}

// OutputKeys は表示・保存の順番
var OutputKeys = []string{"L_min", "C_t", "C_o", "R_sc", "R_2", "R_1"}

// Value はラベルで部品値を取り出す
func (c Components) Value(key string) (float64, bool) {
	switch key {
	case "L_min":
		return c.LMin, true
	case "C_t":
		return c.Ct, true
	case "C_o":
		return c.Co, true
	case "R_sc":
		return c.Rsc, true
	case "R_2":
		return c.R2, true
	case "R_1":
		return c.R1, true
	default:
		return 0, false
	}
}

func (c Components) finite() bool {
	for _, k := range OutputKeys {
		v, _ := c.Value(k)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Calc は p から部品値を計算する。
// 計算式が成り立たない（結果が有限でない）ときだけ ErrInvalidInput を返す。
func Calc(p Params) (Components, error) {
	if p.IOut == 0 {
		return Components{}, fmt.Errorf("%w: i_out must not be zero", ErrInvalidInput)
	}

	vf := ForwardVoltage(p.IOut)

	period := 1.0 / p.Fs
	vL := p.VIn - VSat - p.VOut // オン時にインダクタにかかる電圧
	tOff := period / ((p.VOut+vf)/vL + 1)
	tOn := period - tOff

	ratio := math.Abs(p.VOut)/VRef - 1

	c := Components{
		Ct:   TimingFactor * tOn,
		Rsc:  VSense / (2 * p.IOut),
		LMin: (vL / (2 * p.IOut)) * tOn,
		Co:   (2 * p.IOut * period) / (8 * p.VRip),
		R1:   R1Nominal,
	}
	c.R2 = ratio * c.R1

	if !c.finite() {
		return Components{}, fmt.Errorf("%w: non-finite result for %+v", ErrInvalidInput, p)
	}
	return c, nil
}

// CalcLMin は L_min を起点に入出力条件を逆算するモード。未実装。
func CalcLMin(p Params, lMin float64) (Components, error) {
	return Components{}, fmt.Errorf("calc_lmin (L_min=%g): %w", lMin, ErrNotImplemented)
}

// Mode は計算モード
type Mode int

const (
	ModeStd  Mode = iota // 入出力条件から計算
	ModeLMin             // L_min から逆算
)

func (m Mode) String() string {
	switch m {
	case ModeStd:
		return "std"
	case ModeLMin:
		return "lmin"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Calculate はモードに応じて Calc / CalcLMin を呼ぶ
func Calculate(mode Mode, p Params, lMin float64) (Components, error) {
	switch mode {
	case ModeStd:
		return Calc(p)
	case ModeLMin:
		return CalcLMin(p, lMin)
	default:
		return Components{}, fmt.Errorf("unknown mode %v", mode)
	}
}
