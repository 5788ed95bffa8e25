// plot.go
package main

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// 散布図用の点を作る（計算失敗・非有限の点は落とす）
func scatterPoints(list []Sample, xKey, yKey string) plotter.XYs {
	xys := make(plotter.XYs, 0, len(list))
	for _, s := range list {
		if s.Err != nil {
			continue
		}
		x := s.Values[xKey]
		y, _ := s.Comp.Value(yKey)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

// SavePlot は xKey（入力）対 yKey（出力）の散布図を保存する。OK は青、NG は赤。
func SavePlot(filename string, res SweepResult, xKey, yKey string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s (run %s)", yKey, xKey, res.RunID)
	p.X.Label.Text = xKey
	p.Y.Label.Text = yKey

	series := []struct {
		name  string
		list  []Sample
		color color.Color
	}{
		{"OK", res.OK, color.RGBA{B: 255, A: 255}},
		{"NG", res.NG, color.RGBA{R: 255, A: 255}},
	}

	n := 0
	for _, sr := range series {
		xys := scatterPoints(sr.list, xKey, yKey)
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = sr.color
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add(sr.name, sc)
		n += len(xys)
	}
	if n == 0 {
		return fmt.Errorf("plot %s: no finite points", filename)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
