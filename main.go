// main.go
// Copyright (c) 2026 Ichijo Hodaka
// MC34063 降圧回路の部品計算
// - config.go / config_local.go の入力条件から C_t, R_sc, L_min, C_o, R_2, R_1 を計算して表示
// - 失敗したら stderr にメッセージを出して終了
// - MaxIters > 0 なら入力条件をランダムに振って（スイープ）L_min などの分布を見る
//
// 表示は %g（SI 単位）、スイープの表は有効数字4桁（%.4g）

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)

	cfg := DefaultConfig()
	if LocalOverride != nil {
		LocalOverride(&cfg)
	}

	comp, err := Calculate(cfg.Mode, cfg.Params, cfg.LMin)
	if err != nil {
		log.Fatalf("Error: calc_%s returned an error: %v", cfg.Mode, err)
	}
	if err := PrintComponents(os.Stdout, comp); err != nil {
		log.Fatal(err)
	}

	if cfg.MaxIters <= 0 {
		return
	}

	// Ctrl-C 対応
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := RunSweep(ctx, cfg, os.Stdout)
	if err != nil {
		fmt.Println()
		log.Fatalf("sweep error: %v", err)
	}
	if ctx.Err() != nil {
		fmt.Println("\n[Ctrl-C] interrupt received. stopped.")
	}
	fmt.Println()

	PrintSummary(os.Stdout, res, cfg.YKey, cfg.YRange)
	PrintStats(os.Stdout, "=== OK (saved) stats ===", Summarize(res.OK))
	PrintSampleTable(os.Stdout, "=== OK (saved) ===", cfg.Sweep, res.OK, cfg.MaxPrint)
	PrintSampleTable(os.Stdout, "=== NG (saved) ===", cfg.Sweep, res.NG, cfg.MaxPrint)

	save := func(name, file string, fn func() error) {
		if file == "" {
			return
		}
		if err := fn(); err != nil {
			fmt.Println(name, "save error:", err)
			return
		}
		fmt.Println(name, "saved:", file)
	}
	save("xlsx", cfg.XLSXFile, func() error { return SaveToXLSX(cfg.XLSXFile, res) })
	save("ok tsv", cfg.OKTSVFile, func() error { return SaveListToTSV(cfg.OKTSVFile, cfg.Sweep, res.OK) })
	save("ng tsv", cfg.NGTSVFile, func() error { return SaveListToTSV(cfg.NGTSVFile, cfg.Sweep, res.NG) })
	save("plot", cfg.PlotFile, func() error { return SavePlot(cfg.PlotFile, res, cfg.PlotX, cfg.YKey) })
}
