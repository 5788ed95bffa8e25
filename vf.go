// vf.go
// フライホイールダイオードの順方向電圧 V_f の推定
// - 0.1 V 刻みの実測テーブル（電流）を 0.0 V から順に見ていく
// - テーブル電流 / 出力電流 の比が前のステップより小さくなったら交点を越えたと判断し、1 ステップ戻る
// - 0.6 V（テーブル上限）に達したら 0.5 V を返す

package main

// V_f = 0.0, 0.1, ..., 0.6 V のときの順方向電流 [A]。
// 1N5819 クラスのショットキーダイオードの代表特性。
var forwardVoltageTable = [7]float64{
	0.0,    // 0.0 V
	0.0005, // 0.1 V
	0.005,  // 0.2 V
	0.05,   // 0.3 V
	0.5,    // 0.4 V
	1.5,    // 0.5 V
	3.0,    // 0.6 V
}

// ForwardVoltageTable は組み込みテーブルのコピーを返す。
func ForwardVoltageTable() [7]float64 { return forwardVoltageTable }

// ForwardVoltage は出力電流 iOut [A] における V_f [V] を推定する。
// iOut == 0 は比の計算で 0 除算になる（ガードしていない。Calc 側で弾く）。
func ForwardVoltage(iOut float64) float64 {
	return ForwardVoltageFrom(forwardVoltageTable, iOut)
}

// ForwardVoltageFrom は任意のテーブルで ForwardVoltage と同じ探索をする。
func ForwardVoltageFrom(table [7]float64, iOut float64) float64 {
	if iOut < 0 {
		return 0.0
	}

	last := len(table) - 1
	prev := closeness(table[0] / iOut)
	for k := 1; k <= last; k++ {
		r := closeness(table[k] / iOut)
		if r < prev || k == last {
			return float64(k-1) / 10
		}
		prev = r
	}
	return 0.0
}

// closeness は比 r を 1 で折り返す（r>1 なら 1/r）。交点で最大になる。
func closeness(r float64) float64 {
	if r > 1 {
		return 1 / r
	}
	return r
}
