// config.go を直接さわらずにここで差し替え

package main

func init() {
	LocalOverride = func(cfg *Config) {

		// コメントアウトでデフォルト値が使われる。

		// 入力条件
		cfg.Params = Params{
			VIn:  32,
			VOut: 12,
			VRip: 0.1,
			Fs:   100e3,
			IOut: 0.33,
		}
		// L_min から逆算する場合（未実装なのでエラー終了する）
		// cfg.Mode = ModeLMin
		// cfg.LMin = 220e-6

		// スイープ（0 ならしない。1_000_000 で数秒）
		cfg.MaxIters = 0
		// L_min の許容範囲。計算結果がこの範囲に入っていれば OK
		cfg.YKey = "L_min"
		cfg.YRange = Range{Min: 50e-6, Max: 220e-6}
		// 保存する OK・NG の数
		cfg.MaxOKSave = 100
		cfg.MaxNGSave = 10
		// 結果表示を制限。ファイルには全部保存される。
		cfg.MaxPrint = 10
		// xlsx / tsv / png 出力のファイル名（"" なら保存しない）
		cfg.XLSXFile = ""
		cfg.OKTSVFile = ""
		cfg.NGTSVFile = ""
		cfg.PlotFile = ""
		cfg.PlotX = "v_in"
	}
}
