package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/solweir/rhomb3d"
)

func main() {
	game, err := rhomb3d.NewGame()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(rhomb3d.ScreenWidth, rhomb3d.ScreenHeight)
	ebiten.SetWindowTitle("Golden Rhombohedron")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
