package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"sparkpool/game"
	"sparkpool/particle"
)

func main() {
	config := game.DefaultConfig()

	flag.Uint64Var(&config.Seed, "seed", config.Seed, "random seed (0 = random)")
	flag.Float64Var(&config.CapacityScale, "scale", config.CapacityScale, "pool capacity multiplier")
	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "window width")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "window height")
	flag.IntVar(&config.TPS, "tps", config.TPS, "simulation ticks per second")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	particle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sparkpool")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
