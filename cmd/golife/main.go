//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"golife/internal/app"
	"golife/internal/life"
	"golife/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.File != "" {
		if err := cfg.LoadFile(cfg.File); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	lifeCfg := life.DefaultConfig()
	lifeCfg.Side = cfg.Side
	world := life.NewWithConfig(lifeCfg)
	world.Reset(seed)

	ctrl := sim.New(world, cfg.Rate)
	game := app.New(ctrl, cfg.Pixel, seed)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.Side*cfg.Pixel, cfg.Side*cfg.Pixel)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
