package main

import (
	"io"
	"log"
	"os"
	"time"

	"nozzle_calc/nozzle"
)

type Config struct {
	Inputs nozzle.Inputs
	Output io.Writer
}

/*
既定の実行条件を返す。

	Notes:
		入力は基準設計点 (Me = 2.8, gamma = 1.22, Dt = 20 mm, 半頂角 15 度) に固定する。
		結果は標準出力へ書き出す。
*/
func DefaultConfig() Config {
	return Config{
		Inputs: nozzle.DefaultInputs(),
		Output: os.Stdout,
	}
}

/*
ノズル計算処理の実行

	Args:
		cfg: 実行条件

	Returns:
		入力が範囲外の場合は nozzle.ErrInvalidInput を包んだエラー。このとき何も出力しない。
*/
func run(cfg Config) error {
	log.Printf("ノズル計算開始")
	r, err := nozzle.Calculate(cfg.Inputs)
	if err != nil {
		return err
	}

	log.Printf("計算結果の出力")
	return nozzle.WriteReport(cfg.Output, r)
}

func main() {
	start := time.Now()

	if err := run(DefaultConfig()); err != nil {
		log.Fatal(err)
	}

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
