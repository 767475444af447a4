package main

import (
	"flag"
	"log"

	"github.com/Garsondee/good-looking-snake/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		bossImage string
		scores    string
		mute      bool
		noAudio   bool
		debug     bool
		seed      int64
		width     int
		height    int
		safeTop   int
		safeBot   int
	)
	flag.StringVar(&bossImage, "boss", "", "PNG used for the boss food (default: built-in star)")
	flag.StringVar(&scores, "scores", "", "high score file (default: user config dir)")
	flag.BoolVar(&mute, "mute", false, "start with sound muted")
	flag.BoolVar(&noAudio, "no-audio", false, "do not open an audio device")
	flag.BoolVar(&debug, "debug", false, "show the frame counters overlay")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.IntVar(&width, "width", 432, "window width")
	flag.IntVar(&height, "height", 768, "window height")
	flag.IntVar(&safeTop, "safe-top", 0, "top inset reserved for notches")
	flag.IntVar(&safeBot, "safe-bottom", 0, "bottom inset reserved for home indicators")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Seed = seed
	cfg.Viewport = game.Viewport{Width: width, Height: height, SafeTop: safeTop, SafeBottom: safeBot}

	g, err := game.New(game.Options{
		Config:    cfg,
		StorePath: scores,
		BossImage: bossImage,
		Muted:     mute,
		NoAudio:   noAudio,
		Debug:     debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Good Looking Snake")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(false)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
