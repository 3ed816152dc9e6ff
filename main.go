package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(levelIndex int) *Game {
	return &Game{
		scene: scenes.NewPlatformerScene(levelIndex),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	levelIndex := flag.Int("level", 0, "index of the level to start on")
	debugBoxes := flag.Bool("debug", false, "start with collision box overlay enabled (F1 toggles)")
	flag.Parse()

	config.Debug.ShowBoxes = *debugBoxes

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("boxhopper")

	if err := ebiten.RunGame(NewGame(*levelIndex)); err != nil {
		log.Fatal(err)
	}
}
