package systems

import (
	"github.com/automoto/pocalucha/components"
	"github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateHealthBars moves the displayed bar values toward the real ones.
// Health changes restart a short tween from wherever the bar is now.
func UpdateHealthBars(w donburi.World, dt float64) {
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		bar := components.HealthBar.Get(e)

		if health.Current != bar.Target {
			bar.Target = health.Current
			bar.Tween = gween.New(bar.Shown, float32(health.Current), config.UI.BarTweenSeconds, ease.OutQuad)
		}
		if bar.Tween != nil {
			v, done := bar.Tween.Update(float32(dt))
			bar.Shown = v
			if done {
				bar.Tween = nil
			}
		}

		bar.Stamina = float32(components.Combatant.Get(e).Stamina)
	})
}
