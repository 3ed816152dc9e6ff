package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DrawHUD renders the collected abilities in the top-left corner, in
// pickup order.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	drawLine(screen, fmt.Sprintf("abilities: %d", len(player.Abilities)), 0)
	for i, ability := range player.Abilities {
		drawLine(screen, ability, i+1)
	}
}

func drawLine(screen *ebiten.Image, line string, row int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.UI.Margin, cfg.UI.Margin+float64(row)*cfg.UI.LineHeight)
	op.ColorScale.ScaleWithColor(cfg.UI.TextColor)
	text.Draw(screen, line, hudFace, op)
}
