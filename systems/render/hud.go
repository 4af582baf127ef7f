package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/fonts"
	"github.com/automoto/pocalucha/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	lifeSize = 18
	lifeGap  = 8
)

var textOp = &ebiten.DrawImageOptions{}

// drawCentered draws s with its centre at (x, y), scaled by scale.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y float64, scale float64, clr color.Color) {
	b := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Translate(-float64(b.Min.X+b.Dx()/2), -float64(b.Min.Y+b.Dy()/2))
	textOp.GeoM.Scale(scale, scale)
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, textOp) //nolint:staticcheck // TODO: migrate to text/v2
}

// barX returns the left edge of slot's bars. Player one's hug the left
// margin and player two's the right.
func barX(slot cfg.PlayerSlot) float64 {
	if slot == cfg.PlayerOne {
		return cfg.UI.BarMargin
	}
	return float64(cfg.C.Width) - cfg.UI.BarMargin - cfg.UI.BarWidth
}

// drawBar fills ratio of a bar. Player two's bars drain toward the centre
// from the right.
func drawBar(screen *ebiten.Image, slot cfg.PlayerSlot, y, h, ratio float64, fg, bg color.Color) {
	ratio = max(0, min(1, ratio))
	x := barX(slot)
	fillRect(screen, x, y, cfg.UI.BarWidth, h, bg)

	w := cfg.UI.BarWidth * ratio
	if slot == cfg.PlayerTwo {
		x += cfg.UI.BarWidth - w
	}
	fillRect(screen, x, y, w, h, fg)
}

// DrawHUD renders health, stamina, lives and the round number.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	small := fonts.Small.Get()
	y := cfg.UI.BarMargin

	for _, e := range systems.Combatants(ecs.World) {
		c := components.Combatant.Get(e)
		bar := components.HealthBar.Get(e)
		health := components.Health.Get(e)
		lives := components.Lives.Get(e)

		drawBar(screen, c.Slot, y, cfg.UI.BarHeight,
			float64(bar.Shown)/float64(health.Max), cfg.UI.HealthColor, cfg.UI.HealthBgColor)
		staminaY := y + cfg.UI.BarHeight + 4
		drawBar(screen, c.Slot, staminaY, cfg.UI.StaminaBarH,
			float64(bar.Stamina)/float64(max(bar.StaminaMax, 1)), cfg.UI.StaminaColor, cfg.DarkGray)

		// Name and lives sit under the bars on the outer edge.
		infoY := staminaY + cfg.UI.StaminaBarH + 10
		name := fmt.Sprintf("%s %s", c.Slot, cfg.Characters[c.Character].Name)
		nameX := barX(c.Slot)
		if c.Slot == cfg.PlayerTwo {
			b := text.BoundString(small, name) //nolint:staticcheck // TODO: migrate to text/v2
			nameX += cfg.UI.BarWidth - float64(b.Dx())
		}
		text.Draw(screen, name, small, int(nameX), int(infoY)+lifeSize, cfg.UI.TextColor) //nolint:staticcheck // TODO: migrate to text/v2

		for i := 0; i < lives.Lives; i++ {
			offset := float64(i * (lifeSize + lifeGap))
			lx := barX(c.Slot) + offset
			if c.Slot == cfg.PlayerTwo {
				lx = barX(c.Slot) + cfg.UI.BarWidth - lifeSize - offset
			}
			fillRect(screen, lx, infoY+lifeSize+12, lifeSize, lifeSize, cfg.UI.BannerColor)
		}
	}

	if n := systems.RoundNumber(ecs.World); n > 0 {
		drawCentered(screen, fmt.Sprintf("ROUND %d", n), fonts.Bold.Get(),
			float64(cfg.C.Width)/2, y+cfg.UI.BarHeight/2, 1, cfg.UI.TextColor)
	}
}

// DrawBanner shows the round, KO and winner announcements.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Remaining <= 0 || banner.Text == "" {
		return
	}
	drawCentered(screen, banner.Text, fonts.Title.Get(),
		float64(cfg.C.Width)/2, float64(cfg.C.Height)/3, float64(banner.Scale), cfg.UI.BannerColor)
}

// DrawVictory covers the screen with the match result and the running
// tally.
func DrawVictory(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	fillRect(screen, 0, 0, width, height, cfg.BlackOverlay)

	winner := components.Draw
	if entry, ok := components.Round.First(ecs.World); ok {
		winner = components.Round.Get(entry).Winner
	}
	drawCentered(screen, systems.WinnerText(winner), fonts.Title.Get(), width/2, height/3, 1, cfg.UI.BannerColor)

	if entry, ok := components.Record.First(ecs.World); ok {
		record := components.Record.Get(entry)
		tally := fmt.Sprintf("P1 %d - %d P2", record.Wins[cfg.PlayerOne], record.Wins[cfg.PlayerTwo])
		if record.Draws > 0 {
			tally += fmt.Sprintf("   (%d drawn)", record.Draws)
		}
		drawCentered(screen, tally, fonts.Bold.Get(), width/2, height/2, 1, cfg.UI.TextColor)
	}

	drawCentered(screen, "Press Enter for a rematch", fonts.Regular.Get(), width/2, height*2/3, 1, cfg.UI.TextColor)
}
