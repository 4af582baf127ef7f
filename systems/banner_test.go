package systems_test

import (
	"testing"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bannerOf(m *match) *components.BannerData {
	e, _ := components.Banner.First(m.w)
	return components.Banner.Get(e)
}

func TestBannerPopsAndExpires(t *testing.T) {
	m := newMatch(t)
	systems.ShowBanner(m.w, "ROUND 1")

	banner := bannerOf(m)
	require.Equal(t, "ROUND 1", banner.Text)
	assert.Equal(t, cfg.UI.BannerPopScale, banner.Scale)

	systems.UpdateBanner(m.w, float64(cfg.UI.BannerPop))
	assert.InDelta(t, 1.0, banner.Scale, 1e-6)
	assert.Nil(t, banner.Tween)
	assert.Equal(t, "ROUND 1", banner.Text)

	systems.UpdateBanner(m.w, cfg.UI.BannerSeconds)
	assert.Empty(t, banner.Text)
	assert.Zero(t, banner.Remaining)
}

func TestBannerAnnouncesRoundFlow(t *testing.T) {
	m := newMatch(t)
	systems.ReceiveHit(m.p2, 1000, 0)
	systems.AnnounceEvents(m.w, systems.DrainEvents(m.w))
	assert.Equal(t, "K.O.", bannerOf(m).Text)

	m.step(graceTicks)
	systems.AnnounceEvents(m.w, systems.DrainEvents(m.w))
	assert.Equal(t, "ROUND 2", bannerOf(m).Text)
}

func TestWinnerText(t *testing.T) {
	assert.Equal(t, "P1 WINS", systems.WinnerText(cfg.PlayerOne))
	assert.Equal(t, "P2 WINS", systems.WinnerText(cfg.PlayerTwo))
	assert.Equal(t, "DRAW", systems.WinnerText(components.Draw))
}
