package systems

import (
	"fmt"

	"github.com/automoto/pocalucha/components"
	"github.com/automoto/pocalucha/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ShowBanner puts text on screen for UI.BannerSeconds.
func ShowBanner(w donburi.World, text string) {
	entry, ok := components.Banner.First(w)
	if !ok {
		return
	}
	components.Banner.SetValue(entry, components.BannerData{
		Text:      text,
		Scale:     config.UI.BannerPopScale,
		Tween:     gween.New(config.UI.BannerPopScale, 1, config.UI.BannerPop, ease.OutBack),
		Remaining: config.UI.BannerSeconds,
	})
}

// AnnounceEvents shows the banner for the most important of evs.
func AnnounceEvents(w donburi.World, evs []components.Event) {
	for _, ev := range evs {
		switch ev.Kind {
		case components.EventKO:
			ShowBanner(w, "K.O.")
		case components.EventRoundReset:
			ShowBanner(w, fmt.Sprintf("ROUND %d", RoundNumber(w)))
		case components.EventMatchOver:
			ShowBanner(w, WinnerText(ev.Slot))
		}
	}
}

// UpdateBanner runs the pop-in tween and hides the banner when it expires.
func UpdateBanner(w donburi.World, dt float64) {
	entry, ok := components.Banner.First(w)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Remaining <= 0 {
		return
	}
	if banner.Tween != nil {
		v, done := banner.Tween.Update(float32(dt))
		banner.Scale = v
		if done {
			banner.Tween = nil
		}
	}
	banner.Remaining -= dt
	if banner.Remaining <= 0 {
		banner.Remaining = 0
		banner.Text = ""
	}
}

// RoundNumber returns the current round, or 0 without a round singleton.
func RoundNumber(w donburi.World) int {
	entry, ok := components.Round.First(w)
	if !ok {
		return 0
	}
	return components.Round.Get(entry).Number
}

// WinnerText is the headline for a finished match.
func WinnerText(winner config.PlayerSlot) string {
	if winner == components.Draw {
		return "DRAW"
	}
	return winner.String() + " WINS"
}
