// output.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func fmt4(x float64) string { return fmt.Sprintf("%10.4g", x) }

// 表示用：DisplayScale を掛ける（未設定なら元単位）
func fmtParam(p ParamSpec, x float64) string {
	if p.DisplayScale == 0 {
		return fmt4(x)
	}
	return fmt4(x * p.DisplayScale)
}

// 出力（部品値）の表示単位
var outputUnits = map[string]struct {
	Label string
	Scale float64
}{
	"L_min": {"L_min [µH]", 1e6},
	"C_t":   {"C_t [pF]", 1e12},
	"C_o":   {"C_o [µF]", 1e6},
	"R_sc":  {"R_sc [Ω]", 1.0},
	"R_2":   {"R_2 [kΩ]", 1e-3},
	"R_1":   {"R_1 [kΩ]", 1e-3},
}

// 表示用：出力名に応じて単位変換してから固定幅で文字列化する
func fmtOutput(key string, x float64) string {
	if u, ok := outputUnits[key]; ok {
		return fmt4(x * u.Scale)
	}
	return fmt4(x)
}

func outputLabel(key string) string {
	if u, ok := outputUnits[key]; ok {
		return u.Label
	}
	return key
}

// PrintComponents は部品値を「ラベル = 値」で書く（SI 単位、%g）
func PrintComponents(w io.Writer, c Components) error {
	for _, k := range OutputKeys {
		v, _ := c.Value(k)
		if _, err := fmt.Fprintf(w, "%s\t= %g\n", k, v); err != nil {
			return err
		}
	}
	return nil
}

func PrintSummary(w io.Writer, res SweepResult, yKey string, yRange Range) {
	var okRatio, ngRatio float64
	if res.Total > 0 {
		okRatio = float64(res.OKHits) / float64(res.Total)
		ngRatio = float64(res.NGHits) / float64(res.Total)
	}

	fmt.Fprintf(w, "\nrun=%s  seed=%d\n", res.RunID, res.Seed)
	fmt.Fprintf(w, "%s=[%s, %s]\n", outputLabel(yKey), fmtOutput(yKey, yRange.Min), fmtOutput(yKey, yRange.Max))
	fmt.Fprintf(w, "iters=%d  OK_hits=%d  NG_hits=%d\n", res.Total, res.OKHits, res.NGHits)
	fmt.Fprintf(w, "OK_ratio=%s  NG_ratio=%s\n\n", fmt4(okRatio), fmt4(ngRatio))
}

// PrintSampleTable はサンプルを罫線付きの表で書く（maxPrint > 0 なら先頭 maxPrint 件）
func PrintSampleTable(w io.Writer, title string, specs []ParamSpec, list []Sample, maxPrint int) {
	fmt.Fprintln(w, title)
	if len(list) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	if maxPrint > 0 && len(list) > maxPrint {
		list = list[:maxPrint]
	}

	// ヘッダ（No + params + outputs）
	headers := make([]string, 0, len(specs)+len(OutputKeys)+1)
	headers = append(headers, "No")
	for _, p := range specs {
		headers = append(headers, p.Label)
	}
	for _, k := range OutputKeys {
		headers = append(headers, outputLabel(k))
	}

	// 各セルの文字列を先に作る
	rows := make([][]string, len(list))
	for i, s := range list {
		row := make([]string, 0, len(headers))
		row = append(row, fmt.Sprintf("%d", i+1))
		for _, p := range specs {
			row = append(row, fmtParam(p, s.Values[p.Key]))
		}
		for _, k := range OutputKeys {
			if s.Err != nil {
				row = append(row, fmt.Sprintf("%10s", "-"))
				continue
			}
			v, _ := s.Comp.Value(k)
			row = append(row, fmtOutput(k, v))
		}
		rows[i] = row
	}

	// 列幅を決定（ヘッダ or 中身の最大）
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	// No以外は1文字詰める（右側の余白を削る）ための pad
	pad := func(col int) int {
		if col == 0 {
			return 2
		}
		return 1
	}

	printLine := func() {
		fmt.Fprint(w, "+")
		for i, wd := range widths {
			fmt.Fprint(w, strings.Repeat("-", wd+pad(i))+"+")
		}
		fmt.Fprintln(w)
	}

	// ヘッダ行（µ や Ω は 1 文字幅として詰める）
	printLine()
	fmt.Fprint(w, "|")
	for i, h := range headers {
		fill := strings.Repeat(" ", widths[i]-len([]rune(h)))
		if i == 0 {
			fmt.Fprintf(w, " %s%s |", h, fill)
		} else {
			fmt.Fprintf(w, " %s%s|", h, fill)
		}
	}
	fmt.Fprintln(w)
	printLine()

	// データ行
	for _, row := range rows {
		fmt.Fprint(w, "|")
		for j, cell := range row {
			if j == 0 {
				fmt.Fprintf(w, " %*s |", widths[j], cell)
			} else {
				fmt.Fprintf(w, " %*s|", widths[j], cell)
			}
		}
		fmt.Fprintln(w)
	}
	printLine()
	fmt.Fprintln(w)
}

// PrintStats は Summarize の結果を書く
func PrintStats(w io.Writer, title string, stats []OutputStats) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "%-12s %6s %10s %10s %10s %10s\n", "", "n", "min", "max", "mean", "std")
	for _, st := range stats {
		fmt.Fprintf(w, "%-12s %6d %s %s %s %s\n",
			outputLabel(st.Key), st.N,
			fmtOutput(st.Key, st.Min), fmtOutput(st.Key, st.Max),
			fmtOutput(st.Key, st.Mean), fmtOutput(st.Key, st.StdDev),
		)
	}
	fmt.Fprintln(w)
}

// SaveToXLSX は Summary / OK / NG の 3 シートで保存する（元単位）
func SaveToXLSX(filename string, res SweepResult) error {
	f := excelize.NewFile()
	defer f.Close()

	// Summary
	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	var okRatio, ngRatio float64
	if res.Total > 0 {
		okRatio = float64(res.OKHits) / float64(res.Total)
		ngRatio = float64(res.NGHits) / float64(res.Total)
	}

	cells := [][]any{
		{"Type", "Count", "Ratio"},
		{"OK", res.OKHits, okRatio},
		{"NG", res.NGHits, ngRatio},
		{"ALL", res.Total, 1.0},
		{"Run", res.RunID, nil},
		{"Seed", res.Seed, nil},
	}
	for i, row := range cells {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return err
		}
	}

	// OK / NG
	writeList := func(sheet string, list []Sample) error {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		header := []any{"No"}
		for _, k := range res.Order {
			header = append(header, k)
		}
		for _, k := range OutputKeys {
			header = append(header, k)
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}

		for i, s := range list {
			row := []any{i + 1}
			for _, k := range res.Order {
				row = append(row, s.Values[k])
			}
			for _, k := range OutputKeys {
				if s.Err != nil {
					row = append(row, nil)
					continue
				}
				v, _ := s.Comp.Value(k)
				row = append(row, v)
			}
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeList("OK", res.OK); err != nil {
		return err
	}
	if err := writeList("NG", res.NG); err != nil {
		return err
	}

	return f.SaveAs(filename)
}

// list を TSV で保存する（表示単位）
func SaveListToTSV(filename string, specs []ParamSpec, list []Sample) error {
	if filename == "" {
		return nil
	}

	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	header := make([]string, 0, len(specs)+len(OutputKeys))
	for _, p := range specs {
		header = append(header, p.Label)
	}
	for _, k := range OutputKeys {
		header = append(header, outputLabel(k))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range list {
		row := make([]string, 0, len(header))
		for _, p := range specs {
			row = append(row, strings.TrimSpace(fmtParam(p, s.Values[p.Key])))
		}
		for _, k := range OutputKeys {
			if s.Err != nil {
				row = append(row, "")
				continue
			}
			v, _ := s.Comp.Value(k)
			row = append(row, strings.TrimSpace(fmtOutput(k, v)))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
