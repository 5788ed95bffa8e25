// config.go
package main

import (
	"fmt"
	"time"
)

// Get: パラメータのキー打ち間違いを即気づけるようにする
func Get(x map[string]float64, key string) float64 {
	v, ok := x[key]
	if !ok {
		panic("missing key in x: " + key)
	}
	return v
}

// Config は「ユーザー設定」をまとめたもの
type Config struct {
	// 標準計算
	Mode   Mode
	Params Params
	LMin   float64 // ModeLMin のときの L_min [H]

	// スイープ（MaxIters == 0 ならしない）
	Sweep      []ParamSpec
	YKey       string // 判定に使う出力（OutputKeys のどれか）
	YRange     Range
	MaxIters   int64
	MaxOKSave  int
	MaxNGSave  int
	PrintEvery int64
	Seed       int64
	XLSXFile   string // "" なら保存しない
	OKTSVFile  string // "" なら保存しない
	NGTSVFile  string // "" なら保存しない
	PlotFile   string // "" なら保存しない（.png）
	PlotX      string // 散布図の横軸（Sweep の Key）
	MaxPrint   int    // コンソールに表示する最大件数（0なら制限なし）
}

// LocalOverride は config_local.go で差し替える
var LocalOverride func(cfg *Config)

// ParamsFrom はスイープで引いた値から Params を組み立てる
func ParamsFrom(x map[string]float64) Params {
	return Params{
		Fs:   Get(x, "f_s"),
		VIn:  Get(x, "v_in"),
		VOut: Get(x, "v_out"),
		VRip: Get(x, "v_rip"),
		IOut: Get(x, "i_out"),
	}
}

// ============================================================
// ユーザー設定（ここから）
// ============================================================

func DefaultConfig() Config {
	params := Params{
		VIn:  32,
		VOut: 12,
		VRip: 0.1,
		Fs:   100e3,
		IOut: 0.33,
	}

	// スイープ範囲。Min == Max なら固定値。
	sweep := []ParamSpec{
		// 周波数：元は Hz、表示は kHz → DisplayScale = 1e-3
		{Key: "f_s", Label: "f_s [kHz]", Min: 20e3, Max: 100e3, Scale: Log, DisplayScale: 1e-3},
		{Key: "v_in", Label: "v_in [V]", Min: 24, Max: 36, Scale: Linear, DisplayScale: 1.0},
		{Key: "v_out", Label: "v_out [V]", Min: 12, Max: 12, Scale: Linear, DisplayScale: 1.0},
		// リップル：元は V、表示は mV
		{Key: "v_rip", Label: "v_rip [mV]", Min: 0.05, Max: 0.1, Scale: Linear, DisplayScale: 1e3},
		{Key: "i_out", Label: "i_out [A]", Min: 0.1, Max: 0.75, Scale: Log, DisplayScale: 1.0},
	}

	// L_min がこの範囲に入っていれば OK（H）
	yKey := "L_min"
	yRange := Range{Min: 50e-6, Max: 220e-6}

	// 繰り返し回数（0 ならスイープしない）
	maxIters := int64(0)

	// 保存する OK・NG の数
	maxOKSave := 1000
	maxNGSave := 100

	maxPrint := 20

	// 進行状況表示の更新間隔
	printEvery := int64(100_000)

	// 乱数 seed（実行時刻ベース）
	seed := time.Now().UnixNano()

	// ============================================================
	// ユーザー設定（ここまで）
	// ============================================================

	return Config{
		Mode:       ModeStd,
		Params:     params,
		Sweep:      sweep,
		YKey:       yKey,
		YRange:     yRange,
		MaxIters:   maxIters,
		MaxOKSave:  maxOKSave,
		MaxNGSave:  maxNGSave,
		PrintEvery: printEvery,
		Seed:       seed,
		PlotX:      "i_out",
		MaxPrint:   maxPrint,
	}
}

// Validate はスイープ設定の整合性を見る（標準計算の入力は見ない）
func (cfg Config) Validate() error {
	seen := map[string]bool{}
	for _, p := range cfg.Sweep {
		if seen[p.Key] {
			return fmt.Errorf("duplicate param key: %s", p.Key)
		}
		seen[p.Key] = true
	}
	for _, k := range []string{"f_s", "v_in", "v_out", "v_rip", "i_out"} {
		if !seen[k] {
			return fmt.Errorf("sweep: missing param %s", k)
		}
	}
	if _, ok := (Components{}).Value(cfg.YKey); !ok {
		return fmt.Errorf("unknown YKey %q", cfg.YKey)
	}
	if cfg.PlotFile != "" && !seen[cfg.PlotX] {
		return fmt.Errorf("unknown PlotX %q", cfg.PlotX)
	}
	return nil
}
