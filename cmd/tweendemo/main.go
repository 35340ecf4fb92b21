package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tween/prefabs"
)

func main() {
	tps := flag.Int("tps", ebiten.DefaultTPS, "ticks per second; tweens advance 1/tps seconds per tick")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	dir := flag.String("prefabs", prefabs.Dir, "directory whose files override the embedded prefabs")
	flag.Parse()

	prefabs.Dir = *dir
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tween demo")

	game, err := NewGame(*watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
